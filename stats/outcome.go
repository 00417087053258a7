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

import "github.com/zintix-labs/bgodds/sdk/dice"

// Outcome 一次查詢的結果統計：有利組數、百分比、賠率文字。
//
// 每次都由 (樣本空間, 判斷式) 重新算出，不快取也不就地修改。
type Outcome struct {
	Ways    int    `json:"ways"           yaml:"ways"`
	Percent int    `json:"percent"        yaml:"percent"`
	Odds    string `json:"odds,omitempty" yaml:"odds,omitempty"`
}

// NewOutcome 由有利組數建立 Outcome，Percent 由 Ways 推得。
func NewOutcome(ways int, odds string) Outcome {
	return Outcome{Ways: ways, Percent: Percent(ways), Odds: odds}
}

// Percent = round(100 * ways / 36)，以整數運算做四捨五入（half up）。
func Percent(ways int) int {
	c := dice.Combos
	return (200*ways + c) / (2 * c)
}

// Probability 精確機率 ways/36
func Probability(ways int) float64 {
	return float64(ways) / float64(dice.Combos)
}

// Probability 精確機率 ways/36
func (o Outcome) Probability() float64 { return Probability(o.Ways) }

// Valid Ways 必須落在 [0,36]
func (o Outcome) Valid() bool { return o.Ways >= 0 && o.Ways <= dice.Combos }
