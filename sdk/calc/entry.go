// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calc

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/sdk/dice"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// CanEnter 只要有一顆骰落在空點就能上場；兩顆都落在封鎖點才失敗。
func CanEnter(p dice.Pair, blocked spec.Blocked) bool {
	return !blocked.Has(p.D1) || !blocked.Has(p.D2)
}

// Enters 固定封鎖集合的上場判斷式
func Enters(blocked spec.Blocked) dice.Predicate {
	return func(p dice.Pair) bool { return CanEnter(p, blocked) }
}

// WaysToEnter 從 bar 上場的組數
func WaysToEnter(blocked spec.Blocked) (int, error) {
	if err := checkBlocked(blocked); err != nil {
		return 0, err
	}
	return dice.Count(Enters(blocked)), nil
}

// EntryStats 指定封鎖集合的上場統計，賠率用一位小數的比例。
func EntryStats(blocked spec.Blocked) (stats.Outcome, error) {
	ways, err := WaysToEnter(blocked)
	if err != nil {
		return stats.Outcome{}, err
	}
	return stats.NewOutcome(ways, stats.OddsDecimal(ways, stats.EntryLabels)), nil
}

// EntryRowFor 封鎖 n 個點（0..6）時的上場機率。
//
// 結果是所有 C(6,n) 種封鎖組合的平均，不取決於某一種特定的封鎖位置。
func EntryRowFor(n int) (stats.EntryRow, error) {
	if n < 0 || n > spec.MaxPoint {
		return stats.EntryRow{}, errs.InvalidArgf("blocked count %d out of range [0,%d]", n, spec.MaxPoint)
	}
	total := 0
	patterns := combin.Combinations(spec.MaxPoint, n)
	for _, idx := range patterns {
		var b spec.Blocked
		for _, i := range idx {
			b |= 1 << uint(i)
		}
		total += dice.Count(Enters(b))
	}
	// 四捨五入平均
	cnt := len(patterns)
	ways := (2*total + cnt) / (2 * cnt)
	return stats.EntryRow{
		Open:    spec.MaxPoint - n,
		Blocked: n,
		Outcome: stats.NewOutcome(ways, stats.OddsFraction(ways, stats.EntryLabels)),
	}, nil
}

// EntryTable 封鎖 0..5 個點的上場機率表
func EntryTable() []stats.EntryRow {
	return entryRows(spec.MaxPoint - 1)
}

// EntryTableFull 封鎖 0..6 個點（含全封鎖的 "Cannot enter"）
func EntryTableFull() []stats.EntryRow {
	return entryRows(spec.MaxPoint)
}

func entryRows(maxBlocked int) []stats.EntryRow {
	rows := make([]stats.EntryRow, 0, maxBlocked+1)
	for n := 0; n <= maxBlocked; n++ {
		r, _ := EntryRowFor(n)
		rows = append(rows, r)
	}
	return rows
}
