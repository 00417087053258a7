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

// Package bgodds 是兩顆骰子機率引擎的查詢入口。
//
// 所有查詢都是 (樣本空間, 參數) 的純函數：每次呼叫都重新走訪 36 組骰子，
// 回傳結構化的報表（有利組數、百分比、賠率文字、6x6 命中格）。
// 需要保存「目前選取」的呼叫端（CLI、HTTP、UI）使用 Session。
//
// 典型使用：
//
//	r, err := bgodds.QueryBarEntry(blocked)
//	// r.Ways / r.Percent / r.Odds / r.Grid
package bgodds

import (
	"github.com/zintix-labs/bgodds/sdk/calc"
	"github.com/zintix-labs/bgodds/sdk/dice"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// SumReport 點數和查詢結果
type SumReport struct {
	Sum           int       `json:"sum"         yaml:"sum"`
	stats.Outcome `yaml:",inline"`
	Probability   float64   `json:"probability" yaml:"probability"`
	Grid          dice.Grid `json:"grid"        yaml:"grid"`
}

// EntryReport 從 bar 上場的查詢結果
type EntryReport struct {
	Blocked       spec.Blocked `json:"blocked" yaml:"blocked"`
	Open          []int        `json:"open"    yaml:"open"`
	stats.Outcome `yaml:",inline"`
	Grid          dice.Grid `json:"grid" yaml:"grid"`
}

// HitReport 直接擊中（含對子）的查詢結果
type HitReport struct {
	Distance      int `json:"distance" yaml:"distance"`
	stats.Outcome `yaml:",inline"`
	Grid          dice.Grid `json:"grid" yaml:"grid"`
}

// ShotReport 穿過封鎖點打擊的查詢結果
type ShotReport struct {
	Distance      int          `json:"distance" yaml:"distance"`
	Blocked       spec.Blocked `json:"blocked"  yaml:"blocked"`
	stats.Outcome `yaml:",inline"`
	Grid          dice.Grid `json:"grid" yaml:"grid"`
}

// BearOffReport 下棋查詢結果，TwoRolls 為兩擲內下完的近似百分比
type BearOffReport struct {
	Checkers      spec.Checkers `json:"checkers" yaml:"checkers"`
	Total         int           `json:"total"    yaml:"total"`
	stats.Outcome `yaml:",inline"`
	TwoRolls      int       `json:"twoRolls" yaml:"twoRolls"`
	Grid          dice.Grid `json:"grid"     yaml:"grid"`
}

// QuerySum 點數和 2..12
func QuerySum(sum int) (*SumReport, error) {
	s, err := spec.NewSum(sum)
	if err != nil {
		return nil, err
	}
	o, err := calc.SumStats(s)
	if err != nil {
		return nil, err
	}
	_, g := dice.Tally(calc.SumIs(s))
	return &SumReport{Sum: sum, Outcome: o, Probability: stats.Percent1(o.Ways), Grid: g}, nil
}

// QueryBarEntry 封鎖集合下從 bar 上場
func QueryBarEntry(blocked spec.Blocked) (*EntryReport, error) {
	o, err := calc.EntryStats(blocked)
	if err != nil {
		return nil, err
	}
	_, g := dice.Tally(calc.Enters(blocked))
	return &EntryReport{Blocked: blocked, Open: blocked.Open(), Outcome: o, Grid: g}, nil
}

// QueryHit 直接擊中距離 1..12 的目標（對子算四步）
func QueryHit(distance int) (*HitReport, error) {
	d, err := spec.NewDistance(distance)
	if err != nil {
		return nil, err
	}
	o, err := calc.HitStats(d)
	if err != nil {
		return nil, err
	}
	_, g := dice.Tally(calc.Hits(d))
	return &HitReport{Distance: distance, Outcome: o, Grid: g}, nil
}

// QueryShot 穿過封鎖點打擊距離 1..12 的目標（不計對子四步）
func QueryShot(distance int, blocked spec.Blocked) (*ShotReport, error) {
	d, err := spec.NewDistance(distance)
	if err != nil {
		return nil, err
	}
	o, err := calc.ShotStats(d, blocked)
	if err != nil {
		return nil, err
	}
	_, g := dice.Tally(calc.Shoots(d, blocked))
	return &ShotReport{Distance: distance, Blocked: blocked, Outcome: o, Grid: g}, nil
}

// QueryBearOff p2 為 0 表示只有一顆棋
func QueryBearOff(p1, p2 int) (*BearOffReport, error) {
	c, err := spec.NewCheckers(p1, p2)
	if err != nil {
		return nil, err
	}
	o, two, err := calc.BearOffStats(c)
	if err != nil {
		return nil, err
	}
	_, g := dice.Tally(calc.BearsOff(c))
	return &BearOffReport{Checkers: c, Total: c.Total(), Outcome: o, TwoRolls: two, Grid: g}, nil
}

// Query 依查詢種類分派，回傳對應的 *XxxReport
func Query(sc spec.Scenario) (any, error) {
	if err := sc.Valid(); err != nil {
		return nil, err
	}
	switch sc.Kind {
	case spec.KindSum:
		return QuerySum(sc.Sum)
	case spec.KindEntry:
		return QueryBarEntry(sc.Blocked)
	case spec.KindHit:
		return QueryHit(sc.Distance)
	case spec.KindShot:
		return QueryShot(sc.Distance, sc.Blocked)
	default:
		return QueryBearOff(sc.P1, sc.P2)
	}
}
