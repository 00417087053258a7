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

package stats

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zintix-labs/bgodds/sdk/dice"
)

// Labels 必定成功 / 必定失敗時取代比例的文字
type Labels struct {
	Always string
	Never  string
}

var (
	EntryLabels   = Labels{Always: "Always enters", Never: "Cannot enter"}
	HitLabels     = Labels{Always: "Always hits", Never: "Cannot hit"}
	BearOffLabels = Labels{Always: "Always bears off", Never: "Cannot bear off"}
)

// 超過半數（18）才算 "in favor"
const half = dice.Combos / 2

// OddsDecimal 即時結果用的賠率文字：
//   - 36 -> Always；0 -> Never
//   - ways > 18 -> "R to 1 in favor"，R = round10(ways / (36-ways))
//   - 其他      -> "R to 1 against"，R = round10((36-ways) / ways)
//
// round10 為四捨五入到小數一位，整數不輸出小數點（8.0 -> "8"）。
func OddsDecimal(ways int, l Labels) string {
	if s, ok := boundary(ways, l); ok {
		return s
	}
	if ways > half {
		return round10(ways, dice.Combos-ways) + " to 1 in favor"
	}
	return round10(dice.Combos-ways, ways) + " to 1 against"
}

// OddsFraction 參考表用的賠率文字，以約分後的整數比呈現：
// 20 -> "5 to 4 in favor"，11 -> "25 to 11 against"。
func OddsFraction(ways int, l Labels) string {
	if s, ok := boundary(ways, l); ok {
		return s
	}
	if ways > half {
		a, b := reduce(ways, dice.Combos-ways)
		return fmt.Sprintf("%d to %d in favor", a, b)
	}
	a, b := reduce(dice.Combos-ways, ways)
	return fmt.Sprintf("%d to %d against", a, b)
}

// OddsAgainst 被打機率表用的文字：一律是「不被打 : 被打」的約分比，不帶後綴。
// 11 -> "25 to 11"，12 -> "2 to 1"。
func OddsAgainst(ways int, l Labels) string {
	if s, ok := boundary(ways, l); ok {
		return s
	}
	a, b := reduce(dice.Combos-ways, ways)
	return fmt.Sprintf("%d to %d", a, b)
}

// OddsPlain 封鎖路徑打擊表用的文字：同 OddsDecimal 的比例，
// 但不利時只寫 "R to 1"，不加 "against"。
func OddsPlain(ways int, l Labels) string {
	if s, ok := boundary(ways, l); ok {
		return s
	}
	if ways > half {
		return round10(ways, dice.Combos-ways) + " to 1 in favor"
	}
	return round10(dice.Combos-ways, ways) + " to 1"
}

func boundary(ways int, l Labels) (string, bool) {
	switch {
	case ways >= dice.Combos:
		return l.Always, true
	case ways <= 0:
		return l.Never, true
	}
	return "", false
}

// round10 num/den 四捨五入到小數一位（half away from zero）
func round10(num, den int) string {
	return decimal.NewFromInt(int64(num)).
		Div(decimal.NewFromInt(int64(den))).
		Round(1).
		String()
}

func reduce(a, b int) (int, int) {
	g := gcd(a, b)
	if g == 0 {
		return a, b
	}
	return a / g, b / g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
