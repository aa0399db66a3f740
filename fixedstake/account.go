// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fixedstake

import (
	"math/big"

	"github.com/vechain/prorata/wad"
)

// Account is a participant's stake record. The stake amount is fixed
// between deposit and withdrawal; pending reward derives from the gap
// between the pool accumulator and the snapshot taken at deposit time.
type Account struct {
	stake    *big.Int // active stake amount
	snapshot *big.Int // pool accumulator at last deposit, wad-scaled
	settled  *big.Int // reward credited by re-deposit settlement
}

func newAccount(stake, snapshot *big.Int) *Account {
	return &Account{
		stake:    new(big.Int).Set(stake),
		snapshot: new(big.Int).Set(snapshot),
		settled:  new(big.Int),
	}
}

// Stake returns the active stake amount.
func (a *Account) Stake() *big.Int {
	return new(big.Int).Set(a.stake)
}

// Snapshot returns the wad-scaled accumulator value captured at the
// last deposit.
func (a *Account) Snapshot() *big.Int {
	return new(big.Int).Set(a.snapshot)
}

// Settled returns reward already settled by repeat deposits and not
// yet withdrawn.
func (a *Account) Settled() *big.Int {
	return new(big.Int).Set(a.settled)
}

// IsEmpty returns true if the account holds no stake and no settled
// reward.
func (a *Account) IsEmpty() bool {
	return a.stake.Sign() == 0 && a.settled.Sign() == 0
}

// Reward returns the total pending reward against the given accumulator
// value: the accrual since the snapshot plus any settled credit.
// rewardPerStake must not be behind the account snapshot.
func (a *Account) Reward(rewardPerStake *big.Int) *big.Int {
	reward := a.accrued(rewardPerStake)
	return reward.Add(reward, a.settled)
}

// accrued is stake*(rewardPerStake - snapshot) scaled back down to
// plain units, truncating.
func (a *Account) accrued(rewardPerStake *big.Int) *big.Int {
	delta := new(big.Int).Sub(rewardPerStake, a.snapshot)
	delta.Mul(delta, a.stake)
	return wad.Trunc(delta)
}

func (a *Account) clone() *Account {
	return &Account{
		stake:    new(big.Int).Set(a.stake),
		snapshot: new(big.Int).Set(a.snapshot),
		settled:  new(big.Int).Set(a.settled),
	}
}
