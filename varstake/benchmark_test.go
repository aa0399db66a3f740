// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package varstake

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/vechain/prorata"
)

func benchStaker(i int) prorata.Address {
	return prorata.BytesToAddress(fmt.Appendf(nil, "staker-%07d", i))
}

func newBenchPool(b *testing.B, n int) *Distributor {
	dist := New(Options{})
	for i := 0; i < n; i++ {
		if err := dist.Deposit(benchStaker(i), big.NewInt(int64(i%1000+1))); err != nil {
			b.Fatal(err)
		}
	}
	return dist
}

func benchDistribute(b *testing.B, n int) {
	dist := newBenchPool(b, n)
	reward := big.NewInt(1_000_000_000)
	b.ResetTimer()
	for b.Loop() {
		if err := dist.Distribute(reward); err != nil {
			b.Fatal(err)
		}
	}
}

// Distribution cost must stay flat as the pool grows
func BenchmarkDistribute_1kStakers(b *testing.B)   { benchDistribute(b, 1_000) }
func BenchmarkDistribute_100kStakers(b *testing.B) { benchDistribute(b, 100_000) }

func BenchmarkRewards_100kStakers(b *testing.B) {
	dist := newBenchPool(b, 100_000)
	if err := dist.Distribute(big.NewInt(1_000_000)); err != nil {
		b.Fatal(err)
	}
	addr := benchStaker(42)
	b.ResetTimer()
	for b.Loop() {
		if dist.Rewards(addr).Sign() < 0 {
			b.Fatal("negative reward")
		}
	}
}

func BenchmarkPartialWithdrawDeposit_100kStakers(b *testing.B) {
	dist := newBenchPool(b, 100_000)
	if err := dist.Distribute(big.NewInt(1_000_000)); err != nil {
		b.Fatal(err)
	}
	addr := benchStaker(500)
	amount := big.NewInt(1)
	b.ResetTimer()
	for b.Loop() {
		if err := dist.Withdraw(addr, amount); err != nil {
			b.Fatal(err)
		}
		if err := dist.Deposit(addr, amount); err != nil {
			b.Fatal(err)
		}
	}
}
