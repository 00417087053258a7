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
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/sdk/dice"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// 下棋表只列總點數 <= 8 的兩顆棋組合
const bearOffTableMaxTotal = 8

// ceilDiv a/b 無條件進位
func ceilDiv(a, b int) int { return (a + b - 1) / b }

// CanBearOffOne 一顆棋在 point 上：
//   - 對子 k-k：需要 ceil(point/k) 步，最多四步
//   - 非對子：兩骰合計 >= point
func CanBearOffOne(p dice.Pair, point spec.Point) bool {
	if p.IsDouble() {
		return ceilDiv(int(point), p.D1) <= 4
	}
	return p.Sum() >= int(point)
}

// CanBearOffTwo 兩顆棋在 p1、p2 上：
//   - 對子 k-k：兩顆棋所需步數合計不超過四步
//   - 非對子：每顆骰各負責一顆棋，骰子不能共用
func CanBearOffTwo(p dice.Pair, p1, p2 spec.Point) bool {
	a, b := int(p1), int(p2)
	if p.IsDouble() {
		return ceilDiv(a, p.D1)+ceilDiv(b, p.D1) <= 4
	}
	return (p.D1 >= a && p.D2 >= b) || (p.D1 >= b && p.D2 >= a)
}

// BearsOff 依棋子數選用單顆或兩顆的判斷式
func BearsOff(c spec.Checkers) dice.Predicate {
	if c.Single() {
		return func(p dice.Pair) bool { return CanBearOffOne(p, c.P1) }
	}
	return func(p dice.Pair) bool { return CanBearOffTwo(p, c.P1, c.P2) }
}

// WaysOneMan 一擲就把單顆棋下完的組數
func WaysOneMan(point spec.Point) (int, error) {
	if err := checkPoint(point); err != nil {
		return 0, err
	}
	return dice.Count(BearsOff(spec.Checkers{P1: point})), nil
}

// WaysTwoMen 一擲就把兩顆棋下完的組數
func WaysTwoMen(p1, p2 spec.Point) (int, error) {
	c := spec.Checkers{P1: p1, P2: p2}
	if err := checkPoint(p1); err != nil {
		return 0, err
	}
	if err := checkPoint(p2); err != nil {
		return 0, err
	}
	return dice.Count(BearsOff(c)), nil
}

// TwoRollChance 兩擲內下完的百分比 = round(100 * (1 - ((36-ways)/36)^2))。
//
// 兩擲視為相同機率的獨立試驗，不考慮第一擲失敗後盤面的變化。
// ways 超出 [0,36] 回傳 invalid argument。
func TwoRollChance(ways int) (int, error) {
	return WithinRolls(ways, 2)
}

// twoRolls 給引擎自己算出的 ways 用，超出範圍代表計數本身壞了。
func twoRolls(ways int) int {
	v, err := TwoRollChance(ways)
	if err != nil {
		panic(err)
	}
	return v
}

// WithinRolls n 擲內至少成功一次的百分比：100 * (1 - P(Binomial(n, ways/36) = 0))。
func WithinRolls(ways, n int) (int, error) {
	if ways < 0 || ways > dice.Combos {
		return 0, errs.InvalidArgf("ways %d out of range [0,%d]", ways, dice.Combos)
	}
	if n < 1 {
		return 0, errs.InvalidArgf("rolls %d must be >= 1", n)
	}
	switch ways {
	case 0:
		return 0, nil
	case dice.Combos:
		return 100, nil
	}
	b := distuv.Binomial{N: float64(n), P: stats.Probability(ways)}
	miss := b.CDF(0)
	return int(math.Round(100 * (1 - miss))), nil
}

// BearOffStats 單顆或兩顆棋的一擲統計與兩擲近似值
func BearOffStats(c spec.Checkers) (stats.Outcome, int, error) {
	if err := checkCheckers(c); err != nil {
		return stats.Outcome{}, 0, err
	}
	ways := dice.Count(BearsOff(c))
	return stats.NewOutcome(ways, stats.OddsDecimal(ways, stats.BearOffLabels)), twoRolls(ways), nil
}

func bearOffRow(c spec.Checkers) stats.BearOffRow {
	ways := dice.Count(BearsOff(c))
	label := c.Key()
	if c.Single() {
		label += " (single)"
	}
	return stats.BearOffRow{
		Label:    label,
		P1:       int(c.P1),
		P2:       int(c.P2),
		Ways:     ways,
		Percent:  stats.Percent(ways),
		TwoRolls: twoRolls(ways),
	}
}

// BearOffTable 單顆 1..6，接著總點數 <= 8 的兩顆組合（p1 <= p2，依總點數排序）。
func BearOffTable() []stats.BearOffRow {
	return bearOffRows(bearOffTableMaxTotal)
}

// BearOffTableAll 同 BearOffTable，但列出全部 21 種兩顆組合。
func BearOffTableAll() []stats.BearOffRow {
	return bearOffRows(2 * spec.MaxPoint)
}

func bearOffRows(maxTotal int) []stats.BearOffRow {
	rows := make([]stats.BearOffRow, 0, 6+21)
	for p := spec.MinPoint; p <= spec.MaxPoint; p++ {
		rows = append(rows, bearOffRow(spec.Checkers{P1: spec.Point(p)}))
	}

	pairs := make([]spec.Checkers, 0, 21)
	for p1 := spec.MinPoint; p1 <= spec.MaxPoint; p1++ {
		for p2 := p1; p2 <= spec.MaxPoint; p2++ {
			if p1+p2 <= maxTotal {
				pairs = append(pairs, spec.Checkers{P1: spec.Point(p1), P2: spec.Point(p2)})
			}
		}
	}
	// 同總點數時保留 p1 由小到大
	slices.SortStableFunc(pairs, func(a, b spec.Checkers) int { return cmp.Compare(a.Total(), b.Total()) })
	for _, c := range pairs {
		rows = append(rows, bearOffRow(c))
	}
	return rows
}
