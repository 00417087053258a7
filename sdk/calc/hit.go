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
	"github.com/zintix-labs/bgodds/sdk/dice"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// CanHit 直接擊中距離 d 的目標，對子算四步：
//   - d <= 6：任一顆骰等於 d，或兩骰相加等於 d
//   - d > 6 ：兩骰相加等於 d
//   - 對子 k-k：d 為 2k、3k、4k 也算
//
// 不考慮中途被封鎖。
func CanHit(p dice.Pair, d spec.Distance) bool {
	dist := int(d)
	if dist <= spec.MaxPoint && (p.D1 == dist || p.D2 == dist || p.Sum() == dist) {
		return true
	}
	if dist > spec.MaxPoint && p.Sum() == dist {
		return true
	}
	if p.IsDouble() {
		k := p.D1
		return dist == 2*k || dist == 3*k || dist == 4*k
	}
	return false
}

// Hits 固定距離的擊中判斷式
func Hits(d spec.Distance) dice.Predicate {
	return func(p dice.Pair) bool { return CanHit(p, d) }
}

// WaysToHit 直接擊中距離 d 的組數（含對子的倍數步）
func WaysToHit(d spec.Distance) (int, error) {
	if err := checkDistance(d); err != nil {
		return 0, err
	}
	return dice.Count(Hits(d)), nil
}

// HitStats 賠率以「不被打 : 被打」的約分比表示，例如 "25 to 11"。
func HitStats(d spec.Distance) (stats.Outcome, error) {
	ways, err := WaysToHit(d)
	if err != nil {
		return stats.Outcome{}, err
	}
	return stats.NewOutcome(ways, stats.OddsAgainst(ways, stats.HitLabels)), nil
}

// HitTable 距離 1..12
func HitTable() []stats.HitRow {
	rows := make([]stats.HitRow, 0, spec.MaxDistance)
	for d := spec.MinDistance; d <= spec.MaxDistance; d++ {
		o, _ := HitStats(spec.Distance(d))
		rows = append(rows, stats.HitRow{Distance: d, Outcome: o})
	}
	return rows
}
