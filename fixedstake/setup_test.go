// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fixedstake

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vechain/prorata"
)

type TestFunc func(t *testing.T)

// TestSequence chains ledger operations and assertions so test cases
// read as scripts.
type TestSequence struct {
	dist  *Distributor
	funcs []TestFunc
}

func NewSequence(dist *Distributor) *TestSequence {
	return &TestSequence{dist: dist}
}

func (ts *TestSequence) AddFunc(f TestFunc) *TestSequence {
	ts.funcs = append(ts.funcs, f)
	return ts
}

func (ts *TestSequence) Deposit(staker prorata.Address, amount int64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		if err := ts.dist.Deposit(staker, big.NewInt(amount)); err != nil {
			t.Fatalf("failed to deposit %d for %v: %v", amount, staker, err)
		}
	})
}

func (ts *TestSequence) Distribute(reward int64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		if err := ts.dist.Distribute(big.NewInt(reward)); err != nil {
			t.Fatalf("failed to distribute %d: %v", reward, err)
		}
	})
}

func (ts *TestSequence) Withdraw(staker prorata.Address, wantStake, wantReward int64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		stake, reward, err := ts.dist.Withdraw(staker)
		if err != nil {
			t.Fatalf("failed to withdraw for %v: %v", staker, err)
		}
		if stake.Cmp(big.NewInt(wantStake)) != 0 {
			t.Fatalf("withdrew stake %v for %v, want %d", stake, staker, wantStake)
		}
		if reward.Cmp(big.NewInt(wantReward)) != 0 {
			t.Fatalf("withdrew reward %v for %v, want %d", reward, staker, wantReward)
		}
	})
}

func (ts *TestSequence) TotalStake(want int64) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		if total := ts.dist.TotalStake(); total.Cmp(big.NewInt(want)) != 0 {
			t.Fatalf("total stake is %v, want %d", total, want)
		}
	})
}

func (ts *TestSequence) Count(want int) *TestSequence {
	return ts.AddFunc(func(t *testing.T) {
		if count := ts.dist.Count(); count != want {
			t.Fatalf("account count is %d, want %d", count, want)
		}
	})
}

func (ts *TestSequence) Run(t *testing.T) {
	for _, f := range ts.funcs {
		f(t)
	}
}

// AccountAssertions collects expectations about one account and checks
// them in a single pass.
type AccountAssertions struct {
	dist    *Distributor
	staker  prorata.Address
	stake   *big.Int
	pending *big.Int
	settled *big.Int
}

func AssertAccount(dist *Distributor, staker prorata.Address) *AccountAssertions {
	return &AccountAssertions{dist: dist, staker: staker}
}

func (aa *AccountAssertions) Stake(v int64) *AccountAssertions {
	aa.stake = big.NewInt(v)
	return aa
}

func (aa *AccountAssertions) Pending(v int64) *AccountAssertions {
	aa.pending = big.NewInt(v)
	return aa
}

func (aa *AccountAssertions) Settled(v int64) *AccountAssertions {
	aa.settled = big.NewInt(v)
	return aa
}

func (aa *AccountAssertions) Assert(t *testing.T) {
	acc, err := aa.dist.Account(aa.staker)
	assert.NoError(t, err, "failed to get account")
	if aa.stake != nil {
		assert.Equal(t, aa.stake.String(), acc.Stake().String(), "stake mismatch")
	}
	if aa.settled != nil {
		assert.Equal(t, aa.settled.String(), acc.Settled().String(), "settled reward mismatch")
	}
	if aa.pending != nil {
		pending, err := aa.dist.PendingReward(aa.staker)
		assert.NoError(t, err, "failed to get pending reward")
		assert.Equal(t, aa.pending.String(), pending.String(), "pending reward mismatch")
	}
}

func newStaker(name string) prorata.Address {
	return prorata.BytesToAddress([]byte(name))
}
