// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package varstake

import (
	"github.com/vechain/prorata/metrics"
)

var (
	metricOpCount      = metrics.LazyLoadCounterVec("varstake_operation_count", []string{"op"})
	metricStakersCount = metrics.LazyLoadGauge("varstake_stakers_count")
)
