// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fixedstake implements pull-based reward accounting for pools
// whose participants stake a fixed amount per deposit.
//
// Every distribution adds reward/totalStake to a wad-scaled pool
// accumulator instead of touching individual accounts, so deposit,
// distribute and withdraw all run in constant time regardless of the
// number of participants. An account's pending reward is reconstructed
// on demand from the accumulator and the snapshot captured when the
// stake was placed.
//
// A repeat deposit replaces the stake. The reward accrued under the
// previous stake is settled into the account first, so replacing a
// stake never discards earned reward.
//
// A Distributor is not safe for concurrent use. Callers that share one
// across goroutines must serialize access to the whole ledger.
package fixedstake

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/vechain/prorata"
	"github.com/vechain/prorata/log"
	"github.com/vechain/prorata/wad"
)

var logger = log.WithContext("pkg", "fixedstake")

func SetLogger(l log.Logger) {
	logger = l
}

// Options configures a Distributor.
type Options struct {
	// MinStake, when set, is the smallest stake an account may hold.
	MinStake *big.Int
	// MaxStake, when set, is the largest stake an account may hold.
	MaxStake *big.Int
	// CarryRemainder folds the scaled dust left over by a distribution
	// into the next one instead of dropping it.
	CarryRemainder bool
}

// Distributor tracks fixed stakes and distributes rewards across them
// pro rata, in amortized constant time per operation.
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

// PendingReward returns the reward the staker would receive by
// withdrawing now, or ErrNoStaker if no record exists.
func (d *Distributor) PendingReward(staker prorata.Address) (*big.Int, error) {
	acc, ok := d.store.getAccount(staker)
	if !ok {
		return nil, errors.Wrapf(prorata.ErrNoStaker, "pending reward %v", staker)
	}
	return acc.Reward(d.store.rewardPerStake), nil
}

// Setters - state change

// Deposit places the staker's stake. A repeat deposit replaces the
// previous stake after settling the reward accrued under it.
func (d *Distributor) Deposit(staker prorata.Address, amount *big.Int) error {
	logger.Debug("depositing stake", "staker", staker, "amount", amount)

	if err := validateAmount(amount); err != nil {
		logger.Info("deposit rejected", "staker", staker, "error", err)
		return err
	}
	if err := d.validateStakeRange(amount); err != nil {
		logger.Info("deposit rejected", "staker", staker, "error", err)
		return err
	}

	acc := newAccount(amount, d.store.rewardPerStake)
	if prior, ok := d.store.getAccount(staker); ok {
		// settle the accrual before the snapshot resets, so replacing
		// the stake cannot strand earned reward
		acc.settled.Add(prior.settled, prior.accrued(d.store.rewardPerStake))
		d.store.total.Sub(d.store.total, prior.stake)
	}
	d.store.setAccount(staker, acc)
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

// Withdraw removes the staker's record and returns the stake together
// with the pending reward. It fails with ErrNoStaker when no record
// exists.
func (d *Distributor) Withdraw(staker prorata.Address) (*big.Int, *big.Int, error) {
	logger.Debug("withdrawing stake", "staker", staker)

	acc, ok := d.store.getAccount(staker)
	if !ok {
		err := errors.Wrapf(prorata.ErrNoStaker, "withdraw %v", staker)
		logger.Info("withdraw rejected", "staker", staker, "error", err)
		return nil, nil, err
	}
	if d.store.rewardPerStake.Cmp(acc.snapshot) < 0 {
		// the accumulator never decreases, so a snapshot ahead of it
		// means the ledger is corrupt
		err := errors.Wrapf(prorata.ErrInsufficientFunds, "withdraw %v", staker)
		logger.Error("accumulator behind account snapshot", "staker", staker, "error", err)
		return nil, nil, err
	}

	stake := acc.Stake()
	reward := acc.Reward(d.store.rewardPerStake)
	d.store.deleteAccount(staker)
	d.store.total.Sub(d.store.total, stake)

	metricOpCount().AddWithLabel(1, map[string]string{"op": "withdraw"})
	metricStakersCount().Set(int64(d.store.count()))
	logger.Info("stake withdrawn", "staker", staker, "stake", stake, "reward", reward)
	return stake, reward, nil
}
