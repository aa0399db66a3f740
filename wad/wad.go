// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package wad implements 18-decimal fixed-point arithmetic over
// big.Int. Accumulators and tallies are wad-scaled; stake and reward
// amounts stay in plain integer units. All divisions truncate, so
// value can only ever be under-counted, never over-counted.
package wad

import "math/big"

// Scale is the fixed-point precision factor, 10^18.
var Scale = big.NewInt(1e18)

// FromInt scales a plain integer up to wad precision.
func FromInt(x *big.Int) *big.Int {
	return new(big.Int).Mul(x, Scale)
}

// Trunc scales a wad value down to a plain integer, truncating.
func Trunc(x *big.Int) *big.Int {
	return new(big.Int).Quo(x, Scale)
}

// Mul returns x*y/Scale truncated, for wad-scaled operands.
func Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Quo(z, Scale)
}

// Div returns x*Scale/y truncated. y must be non-zero.
func Div(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, Scale)
	return z.Quo(z, y)
}
