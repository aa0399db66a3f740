// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fixedstake

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/vechain/prorata"
)

// validateAmount rejects nil and non-positive amounts.
func validateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Wrap(prorata.ErrInvalidAmount, "amount must be positive")
	}
	return nil
}

// validateStakeRange enforces the configured stake bounds on the stake
// an account would hold after the operation.
func (d *Distributor) validateStakeRange(stake *big.Int) error {
	if d.opts.MinStake != nil && stake.Cmp(d.opts.MinStake) < 0 {
		return errors.Wrap(prorata.ErrInvalidAmount, "stake is below the minimum")
	}
	if d.opts.MaxStake != nil && stake.Cmp(d.opts.MaxStake) > 0 {
		return errors.Wrap(prorata.ErrInvalidAmount, "stake is above the maximum")
	}
	return nil
}
