// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package varstake

import (
	"math/big"

	"github.com/vechain/prorata"
)

// storage holds the ledger state of a distributor.
type storage struct {
	accounts       map[prorata.Address]*Account
	total          *big.Int // sum of all active stakes
	rewardPerStake *big.Int // cumulative reward per unit of stake, wad-scaled
	remainder      *big.Int // undistributed scaled dust carried between rounds
}

func newStorage() *storage {
	return &storage{
		accounts:       make(map[prorata.Address]*Account),
		total:          new(big.Int),
		rewardPerStake: new(big.Int),
		remainder:      new(big.Int),
	}
}

func (s *storage) getAccount(staker prorata.Address) (*Account, bool) {
	acc, ok := s.accounts[staker]
	return acc, ok
}

func (s *storage) setAccount(staker prorata.Address, acc *Account) {
	s.accounts[staker] = acc
}

func (s *storage) deleteAccount(staker prorata.Address) {
	delete(s.accounts, staker)
}

func (s *storage) count() int {
	return len(s.accounts)
}
