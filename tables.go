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

package bgodds

import (
	"github.com/zintix-labs/bgodds/sdk/calc"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// TableOptions 產生表格的參數與要高亮的目前選取
type TableOptions struct {
	Blocked  spec.Blocked  // shot 表使用的封鎖集合
	Full     bool          // entry 含全封鎖列、bearoff 列出全部兩顆組合
	Sum      int           // 高亮的點數和
	Open     int           // 高亮的空點數，-1 不標記
	Distance int           // 高亮的距離
	Checkers spec.Checkers // 高亮的下棋位置
}

// DefaultTableOptions 不高亮任何列
func DefaultTableOptions() TableOptions {
	return TableOptions{Open: -1}
}

// TableResult 一張表：Rows 為該種類的列切片，Text 為純文字版本
type TableResult struct {
	Kind spec.Kind    `json:"kind" yaml:"kind"`
	Rows any          `json:"rows" yaml:"rows"`
	text *stats.Table
}

// Text 純文字表格
func (t *TableResult) Text() string { return t.text.String() }

// Tables 依種類產生整張表
func Tables(kind spec.Kind, opt TableOptions) (*TableResult, error) {
	k, err := spec.ParseKind(string(kind))
	if err != nil {
		return nil, err
	}
	res := &TableResult{Kind: k}
	switch k {
	case spec.KindSum:
		rows := calc.SumTable()
		res.Rows, res.text = rows, stats.SumTable(rows, opt.Sum)
	case spec.KindEntry:
		rows := calc.EntryTable()
		if opt.Full {
			rows = calc.EntryTableFull()
		}
		res.Rows, res.text = rows, stats.EntryTable(rows, opt.Open)
	case spec.KindHit:
		rows := calc.HitTable()
		res.Rows, res.text = rows, stats.HitTable(rows, opt.Distance)
	case spec.KindShot:
		rows, err := calc.ShotTable(opt.Blocked)
		if err != nil {
			return nil, err
		}
		res.Rows, res.text = rows, stats.ShotTable(rows, opt.Distance)
		res.text.Title += " (blocked: " + opt.Blocked.String() + ")"
	case spec.KindBearOff:
		rows := calc.BearOffTable()
		if opt.Full {
			rows = calc.BearOffTableAll()
		}
		res.Rows, res.text = rows, stats.BearOffTable(rows, int(opt.Checkers.P1), int(opt.Checkers.P2))
	}
	return res, nil
}
