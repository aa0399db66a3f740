// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package varstake

import (
	"math/big"

	"github.com/vechain/prorata/wad"
)

// Account is a participant's stake record. The tally is a running
// correction term, not a snapshot: deposits raise it by the reward the
// new stake must not claim from past rounds, withdrawals lower it by
// the claim the departing stake carries away. It may legitimately go
// negative.
type Account struct {
	stake *big.Int // active stake amount
	tally *big.Int // wad-scaled correction term
}

func newAccount() *Account {
	return &Account{
		stake: new(big.Int),
		tally: new(big.Int),
	}
}

// Stake returns the active stake amount.
func (a *Account) Stake() *big.Int {
	return new(big.Int).Set(a.stake)
}

// Tally returns the wad-scaled correction term.
func (a *Account) Tally() *big.Int {
	return new(big.Int).Set(a.tally)
}

// IsEmpty returns true if the account holds no stake.
func (a *Account) IsEmpty() bool {
	return a.stake.Sign() == 0
}

// Reward returns the pending reward against the given accumulator
// value, truncated to plain units.
func (a *Account) Reward(rewardPerStake *big.Int) *big.Int {
	return wad.Trunc(a.pendingScaled(rewardPerStake))
}

// pendingScaled is stake*rewardPerStake - tally, still wad-scaled. The
// tally adjustments are exact products, so this carries no rounding
// error and is non-negative for any ledger maintained through the
// public operations.
func (a *Account) pendingScaled(rewardPerStake *big.Int) *big.Int {
	scaled := new(big.Int).Mul(a.stake, rewardPerStake)
	return scaled.Sub(scaled, a.tally)
}

func (a *Account) clone() *Account {
	return &Account{
		stake: new(big.Int).Set(a.stake),
		tally: new(big.Int).Set(a.tally),
	}
}
