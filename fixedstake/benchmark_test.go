// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fixedstake

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/elastic/gosigar"
	"github.com/vechain/prorata"
)

func benchStaker(i int) prorata.Address {
	return prorata.BytesToAddress(fmt.Appendf(nil, "staker-%07d", i))
}

// poolSizes picks the pool sizes to benchmark, adding the largest one
// only on machines with enough memory to hold it.
func poolSizes(b *testing.B) []int {
	sizes := []int{100, 10_000, 100_000}

	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		b.Logf("failed to get total mem: %v", err)
		return sizes
	}
	if mem.Total/1024/1024 >= 8192 {
		sizes = append(sizes, 1_000_000)
	}
	return sizes
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

// Distribution cost must stay flat as the pool grows
func BenchmarkDistribute(b *testing.B) {
	for _, n := range poolSizes(b) {
		b.Run(fmt.Sprintf("stakers_%d", n), func(b *testing.B) {
			dist := newBenchPool(b, n)
			reward := big.NewInt(1_000_000_000)
			b.ResetTimer()
			for b.Loop() {
				if err := dist.Distribute(reward); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Churning one account must not depend on how many others exist
func BenchmarkWithdrawDeposit(b *testing.B) {
	for _, n := range poolSizes(b) {
		b.Run(fmt.Sprintf("stakers_%d", n), func(b *testing.B) {
			dist := newBenchPool(b, n)
			if err := dist.Distribute(big.NewInt(1_000_000)); err != nil {
				b.Fatal(err)
			}
			addr := benchStaker(0)
			b.ResetTimer()
			for b.Loop() {
				stake, _, err := dist.Withdraw(addr)
				if err != nil {
					b.Fatal(err)
				}
				if err := dist.Deposit(addr, stake); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPendingReward(b *testing.B) {
	dist := newBenchPool(b, 100_000)
	if err := dist.Distribute(big.NewInt(1_000_000)); err != nil {
		b.Fatal(err)
	}
	addr := benchStaker(42)
	b.ResetTimer()
	for b.Loop() {
		if _, err := dist.PendingReward(addr); err != nil {
			b.Fatal(err)
		}
	}
}
