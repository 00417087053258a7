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
	"github.com/shopspring/decimal"
	"github.com/zintix-labs/bgodds/sdk/dice"
)

// SumRow 點數和分布表的一列
type SumRow struct {
	Sum         int     `json:"sum"         yaml:"sum"`
	Ways        int     `json:"ways"        yaml:"ways"`
	Percent     int     `json:"percent"     yaml:"percent"`
	Probability float64 `json:"probability" yaml:"probability"` // 百分比，保留一位小數
}

// EntryRow 依空點數量的上場機率表的一列
type EntryRow struct {
	Open    int `json:"open"    yaml:"open"`
	Blocked int `json:"blocked" yaml:"blocked"`
	Outcome `yaml:",inline"`
}

// HitRow 直接擊中（含對子）機率表的一列，Odds 為「不被打 : 被打」
type HitRow struct {
	Distance int `json:"distance" yaml:"distance"`
	Outcome  `yaml:",inline"`
}

// ShotRow 封鎖路徑下的打擊機率表的一列
type ShotRow struct {
	Distance int `json:"distance" yaml:"distance"`
	Outcome  `yaml:",inline"`
}

// BearOffRow 單/雙子下棋機率表的一列，P2 == 0 代表單子
type BearOffRow struct {
	Label    string `json:"label"          yaml:"label"`
	P1       int    `json:"p1"             yaml:"p1"`
	P2       int    `json:"p2,omitempty"   yaml:"p2,omitempty"`
	Ways     int    `json:"ways"           yaml:"ways"`
	Percent  int    `json:"percent"        yaml:"percent"`
	TwoRolls int    `json:"twoRolls"       yaml:"twoRolls"`
}

// Percent1 100*ways/36 四捨五入到小數一位：1 -> 2.8
func Percent1(ways int) float64 {
	return decimal.NewFromInt(int64(100 * ways)).
		Div(decimal.NewFromInt(int64(dice.Combos))).
		Round(1).
		InexactFloat64()
}
