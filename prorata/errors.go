// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package prorata

import "github.com/pkg/errors"

// The error kinds shared by both distributors. Engines wrap these with
// call-site context, so test with the IsX helpers rather than equality.
var (
	// ErrInvalidAmount marks a non-positive deposit, withdrawal or reward
	// amount, a withdrawal exceeding available stake, or a stake-bound
	// violation.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrZeroTotalStake marks a distribution attempted while the pool
	// holds no stake; reward-per-stake is undefined.
	ErrZeroTotalStake = errors.New("total stake is zero")

	// ErrNoStaker marks an operation addressed to a participant with no
	// active record.
	ErrNoStaker = errors.New("unknown staker")

	// ErrInsufficientFunds marks a withdrawal that found the accumulator
	// behind a stored snapshot or tally. It is unreachable while
	// accumulator monotonicity holds and indicates a bug if ever
	// observed.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

func IsZeroTotalStake(err error) bool {
	return errors.Is(err, ErrZeroTotalStake)
}

func IsNoStaker(err error) bool {
	return errors.Is(err, ErrNoStaker)
}

func IsInsufficientFunds(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
