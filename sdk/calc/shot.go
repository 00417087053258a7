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

// CanShoot 穿過封鎖點打擊距離 d 的目標：
//   - 任一顆骰等於 d：直接打，不會被擋
//   - 兩骰相加等於 d：先走 d1 或先走 d2，只要有一個中繼點是空的就行
//
// 對子的四步不計入，與 CanHit 是不同的規則。
func CanShoot(p dice.Pair, d spec.Distance, blocked spec.Blocked) bool {
	dist := int(d)
	if p.D1 == dist || p.D2 == dist {
		return true
	}
	return p.Sum() == dist && (!blocked.Has(p.D1) || !blocked.Has(p.D2))
}

// Shoots 固定距離與封鎖集合的打擊判斷式
func Shoots(d spec.Distance, blocked spec.Blocked) dice.Predicate {
	return func(p dice.Pair) bool { return CanShoot(p, d, blocked) }
}

// WaysToShoot 穿過封鎖點擊中距離 d 的組數
func WaysToShoot(d spec.Distance, blocked spec.Blocked) (int, error) {
	if err := checkDistance(d); err != nil {
		return 0, err
	}
	if err := checkBlocked(blocked); err != nil {
		return 0, err
	}
	return dice.Count(Shoots(d, blocked)), nil
}

// ShotStats 即時結果，賠率規則與上場相同（in favor / against）。
func ShotStats(d spec.Distance, blocked spec.Blocked) (stats.Outcome, error) {
	ways, err := WaysToShoot(d, blocked)
	if err != nil {
		return stats.Outcome{}, err
	}
	return stats.NewOutcome(ways, stats.OddsDecimal(ways, stats.HitLabels)), nil
}

// ShotTable 距離 1..12；表格的賠率不寫 "against"。
func ShotTable(blocked spec.Blocked) ([]stats.ShotRow, error) {
	if err := checkBlocked(blocked); err != nil {
		return nil, err
	}
	rows := make([]stats.ShotRow, 0, spec.MaxDistance)
	for d := spec.MinDistance; d <= spec.MaxDistance; d++ {
		ways := dice.Count(Shoots(spec.Distance(d), blocked))
		rows = append(rows, stats.ShotRow{
			Distance: d,
			Outcome:  stats.NewOutcome(ways, stats.OddsPlain(ways, stats.HitLabels)),
		})
	}
	return rows, nil
}
