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

// SumIs 點數和等於 s
func SumIs(s spec.Sum) dice.Predicate {
	return func(p dice.Pair) bool { return p.Sum() == int(s) }
}

// WaysForSum 點數和為 s 的組數
func WaysForSum(s spec.Sum) (int, error) {
	if err := checkSum(s); err != nil {
		return 0, err
	}
	return dice.Count(SumIs(s)), nil
}

// SumStats 單一點數和的統計（點數和不帶賠率文字）
func SumStats(s spec.Sum) (stats.Outcome, error) {
	ways, err := WaysForSum(s)
	if err != nil {
		return stats.Outcome{}, err
	}
	return stats.NewOutcome(ways, ""), nil
}

// SumTable 點數和 2..12 的分布，各列 Ways 合計恰為 36。
func SumTable() []stats.SumRow {
	rows := make([]stats.SumRow, 0, spec.MaxSum-spec.MinSum+1)
	for s := spec.MinSum; s <= spec.MaxSum; s++ {
		ways := dice.Count(SumIs(spec.Sum(s)))
		rows = append(rows, stats.SumRow{
			Sum:         s,
			Ways:        ways,
			Percent:     stats.Percent(ways),
			Probability: stats.Percent1(ways),
		})
	}
	return rows
}
