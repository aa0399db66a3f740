// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package varstake implements pull-based reward accounting for pools
// whose participants may grow or shrink their stake at any time.
//
// Like package fixedstake it fans rewards out through a single
// wad-scaled accumulator, but instead of a per-deposit snapshot each
// account carries a running tally: deposits raise the tally by
// rewardPerStake*amount and withdrawals lower it by the same product,
// so stake*rewardPerStake - tally is the exact pending reward no
// matter how the stake moved in between. All operations stay constant
// time in the number of participants.
//
// Shrinking a stake leaves the pending reward untouched. Withdrawing
// the last unit of stake through Withdraw deletes the record along
// with any reward still pending on it; WithdrawAll is the exit path
// that pays the reward out.
//
// A Distributor is not safe for concurrent use. Callers that share one
// across goroutines must serialize access to the whole ledger.
package varstake

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/vechain/prorata"
	"github.com/vechain/prorata/log"
	"github.com/vechain/prorata/wad"
)

var logger = log.WithContext("pkg", "varstake")

func SetLogger(l log.Logger) {
	logger = l
}

// Options configures a Distributor.
type Options struct {
	// MinStake, when set, is the smallest stake an account may hold.
	// Withdrawals may still empty an account entirely.
	MinStake *big.Int
	// MaxStake, when set, is the largest stake an account may hold.
	MaxStake *big.Int
	// CarryRemainder folds the scaled dust left over by a distribution
	// into the next one instead of dropping it.
	CarryRemainder bool
}

// Distributor tracks variable stakes and distributes rewards across
// them pro rata, in amortized constant time per operation.
type Distributor struct {
	store *storage
	opts  Options
}

// New creates an empty distributor.
func New(opts Options) *Distributor {
	if opts.MinStake != nil {
		opts.MinStake = new(big.Int).Set(opts.MinStake)
	}
	if opts.MaxStake != nil {
		opts.MaxStake = new(big.Int).Set(opts.MaxStake)
	}
	return &Distributor{
		store: newStorage(),
		opts:  opts,
	}
}

// Getters - no state change

// TotalStake returns the sum of all active stakes.
func (d *Distributor) TotalStake() *big.Int {
	return new(big.Int).Set(d.store.total)
}

// RewardPerStake returns the wad-scaled cumulative reward per unit of
// stake.
func (d *Distributor) RewardPerStake() *big.Int {
	return new(big.Int).Set(d.store.rewardPerStake)
}

// Count returns the number of active accounts.
func (d *Distributor) Count() int {
	return d.store.count()
}

// Account returns a copy of the staker's record, or ErrNoStaker if
// none exists.
func (d *Distributor) Account(staker prorata.Address) (*Account, error) {
	acc, ok := d.store.getAccount(staker)
	if !ok {
		return nil, errors.Wrapf(prorata.ErrNoStaker, "account %v", staker)
	}
	return acc.clone(), nil
}

// Rewards returns the staker's pending reward. A staker with no record
// has zero pending reward rather than an error, so callers need not
// distinguish "never staked" from "fully exited".
func (d *Distributor) Rewards(staker prorata.Address) *big.Int {
	acc, ok := d.store.getAccount(staker)
	if !ok {
		return new(big.Int)
	}
	return acc.Reward(d.store.rewardPerStake)
}

// Setters - state change

// Deposit adds to the staker's stake, creating the record on first
// sight.
func (d *Distributor) Deposit(staker prorata.Address, amount *big.Int) error {
	logger.Debug("depositing stake", "staker", staker, "amount", amount)

	if err := validateAmount(amount); err != nil {
		logger.Info("deposit rejected", "staker", staker, "error", err)
		return err
	}

	acc, ok := d.store.getAccount(staker)
	resulting := new(big.Int).Set(amount)
	if ok {
		resulting.Add(resulting, acc.stake)
	}
	if err := d.validateStakeRange(resulting); err != nil {
		logger.Info("deposit rejected", "staker", staker, "error", err)
		return err
	}

	if !ok {
		acc = newAccount()
		d.store.setAccount(staker, acc)
	}
	// the tally absorbs the share of past rounds the new stake did not
	// earn
	acc.tally.Add(acc.tally, new(big.Int).Mul(d.store.rewardPerStake, amount))
	acc.stake.Set(resulting)
	d.store.total.Add(d.store.total, amount)

	metricOpCount().AddWithLabel(1, map[string]string{"op": "deposit"})
	metricStakersCount().Set(int64(d.store.count()))
	logger.Info("stake deposited", "staker", staker, "amount", amount, "totalStake", d.store.total)
	return nil
}

// Distribute spreads the reward across all active stakes in proportion
// to their size. It fails with ErrZeroTotalStake when no stake is
// active, leaving the reward with the caller.
func (d *Distributor) Distribute(reward *big.Int) error {
	logger.Debug("distributing reward", "reward", reward)

	if err := validateAmount(reward); err != nil {
		logger.Info("distribute rejected", "error", err)
		return err
	}
	if d.store.total.Sign() == 0 {
		err := errors.Wrap(prorata.ErrZeroTotalStake, "distribute")
		logger.Info("distribute rejected", "error", err)
		return err
	}

	num := wad.FromInt(reward)
	if d.opts.CarryRemainder {
		num.Add(num, d.store.remainder)
	}
	delta, rem := new(big.Int).QuoRem(num, d.store.total, new(big.Int))
	d.store.rewardPerStake.Add(d.store.rewardPerStake, delta)
	if d.opts.CarryRemainder {
		d.store.remainder = rem
	}

	metricOpCount().AddWithLabel(1, map[string]string{"op": "distribute"})
	logger.Info("reward distributed", "reward", reward, "rewardPerStake", d.store.rewardPerStake)
	return nil
}

// Withdraw removes part of the staker's stake. The pending reward is
// unaffected unless the stake drops to zero, which deletes the record
// together with any reward still pending on it.
func (d *Distributor) Withdraw(staker prorata.Address, amount *big.Int) error {
	logger.Debug("withdrawing stake", "staker", staker, "amount", amount)

	acc, ok := d.store.getAccount(staker)
	if !ok {
		err := errors.Wrapf(prorata.ErrNoStaker, "withdraw %v", staker)
		logger.Info("withdraw rejected", "staker", staker, "error", err)
		return err
	}
	if err := validateAmount(amount); err != nil {
		logger.Info("withdraw rejected", "staker", staker, "error", err)
		return err
	}
	if amount.Cmp(acc.stake) > 0 {
		err := errors.Wrap(prorata.ErrInvalidAmount, "withdrawal exceeds stake")
		logger.Info("withdraw rejected", "staker", staker, "error", err)
		return err
	}
	remaining := new(big.Int).Sub(acc.stake, amount)
	if remaining.Sign() != 0 {
		if err := d.validateStakeRange(remaining); err != nil {
			logger.Info("withdraw rejected", "staker", staker, "error", err)
			return err
		}
	}

	// the departing stake takes its share of the tally with it, which
	// keeps the pending reward exact across partial withdrawals
	acc.tally.Sub(acc.tally, new(big.Int).Mul(d.store.rewardPerStake, amount))
	acc.stake.Set(remaining)
	d.store.total.Sub(d.store.total, amount)
	if acc.IsEmpty() {
		if leftover := acc.Reward(d.store.rewardPerStake); leftover.Sign() > 0 {
			logger.Warn("unclaimed reward forfeited", "staker", staker, "reward", leftover)
		}
		d.store.deleteAccount(staker)
	}

	metricOpCount().AddWithLabel(1, map[string]string{"op": "withdraw"})
	metricStakersCount().Set(int64(d.store.count()))
	logger.Info("stake withdrawn", "staker", staker, "amount", amount, "totalStake", d.store.total)
	return nil
}

// WithdrawAll removes the staker's record and returns the full stake
// together with the pending reward, computed before any mutation. It
// fails with ErrNoStaker when no record exists.
func (d *Distributor) WithdrawAll(staker prorata.Address) (*big.Int, *big.Int, error) {
	logger.Debug("withdrawing all stake", "staker", staker)

	acc, ok := d.store.getAccount(staker)
	if !ok {
		err := errors.Wrapf(prorata.ErrNoStaker, "withdraw all %v", staker)
		logger.Info("withdraw rejected", "staker", staker, "error", err)
		return nil, nil, err
	}
	pending := acc.pendingScaled(d.store.rewardPerStake)
	if pending.Sign() < 0 {
		// the tally can only outrun stake*rewardPerStake if the ledger
		// is corrupt
		err := errors.Wrapf(prorata.ErrInsufficientFunds, "withdraw all %v", staker)
		logger.Error("tally ahead of accumulated reward", "staker", staker, "error", err)
		return nil, nil, err
	}

	stake := acc.Stake()
	reward := wad.Trunc(pending)
	d.store.deleteAccount(staker)
	d.store.total.Sub(d.store.total, stake)

	metricOpCount().AddWithLabel(1, map[string]string{"op": "withdraw_all"})
	metricStakersCount().Set(int64(d.store.count()))
	logger.Info("stake fully withdrawn", "staker", staker, "stake", stake, "reward", reward)
	return stake, reward, nil
}
