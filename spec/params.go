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

// Package spec 定義所有查詢參數（點數、距離、點數和、封鎖點、棋子位置）與其合法範圍。
//
// 規則只有一條：超出範圍一律回傳 errs.ErrInvalidArgument，絕不默默 clamp。
package spec

import (
	"fmt"

	"github.com/zintix-labs/bgodds/errs"
)

const (
	MinPoint    int = 1
	MaxPoint    int = 6
	MinDistance int = 1
	MaxDistance int = 12
	MinSum      int = 2
	MaxSum      int = 12
)

// Point 棋盤上 1..6 的位置（入場點、中繼點、下棋點數）
type Point int

func (p Point) Valid() bool { return int(p) >= MinPoint && int(p) <= MaxPoint }

func NewPoint(v int) (Point, error) {
	p := Point(v)
	if !p.Valid() {
		return 0, errs.InvalidArgf("point %d out of range [%d,%d]", v, MinPoint, MaxPoint)
	}
	return p, nil
}

// Distance 打擊目標的距離 1..12
type Distance int

func (d Distance) Valid() bool { return int(d) >= MinDistance && int(d) <= MaxDistance }

func NewDistance(v int) (Distance, error) {
	d := Distance(v)
	if !d.Valid() {
		return 0, errs.InvalidArgf("distance %d out of range [%d,%d]", v, MinDistance, MaxDistance)
	}
	return d, nil
}

// Sum 兩顆骰的點數和 2..12
type Sum int

func (s Sum) Valid() bool { return int(s) >= MinSum && int(s) <= MaxSum }

func NewSum(v int) (Sum, error) {
	s := Sum(v)
	if !s.Valid() {
		return 0, errs.InvalidArgf("sum %d out of range [%d,%d]", v, MinSum, MaxSum)
	}
	return s, nil
}

// Checkers 一或兩顆待下棋的棋子。P2 為 0 代表只有一顆棋子。
type Checkers struct {
	P1 Point `json:"p1" yaml:"p1"`
	P2 Point `json:"p2,omitempty" yaml:"p2,omitempty"`
}

// NewCheckers p1 必須在 1..6；p2 為 0（單顆）或 1..6。
func NewCheckers(p1, p2 int) (Checkers, error) {
	a, err := NewPoint(p1)
	if err != nil {
		return Checkers{}, err
	}
	if p2 == 0 {
		return Checkers{P1: a}, nil
	}
	b, err := NewPoint(p2)
	if err != nil {
		return Checkers{}, err
	}
	return Checkers{P1: a, P2: b}, nil
}

func (c Checkers) Single() bool { return c.P2 == 0 }

func (c Checkers) Valid() bool {
	return c.P1.Valid() && (c.P2 == 0 || c.P2.Valid())
}

// Total 需要的總點數
func (c Checkers) Total() int { return int(c.P1) + int(c.P2) }

// Key 表格索引用的標籤：單顆為 "4"，兩顆為小在前的 "2-5"。
func (c Checkers) Key() string {
	if c.Single() {
		return fmt.Sprintf("%d", c.P1)
	}
	lo, hi := min(c.P1, c.P2), max(c.P1, c.P2)
	return fmt.Sprintf("%d-%d", lo, hi)
}
