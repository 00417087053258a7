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

// Package dice 是兩顆六面骰的樣本空間。
//
// 所有計算器都建立在同一個基礎上：依序走訪 36 個有序組合 (d1, d2)，
// 以 Predicate 判斷每一組是否為有利結果，再把計數交給上層換算成機率。
// 每一組的機率固定是 1/36（非對子的兩種順序各算一次）。
package dice

import (
	"fmt"
	"iter"
	"strings"
)

const (
	Faces  int = 6             // 每顆骰子的面數
	Combos int = Faces * Faces // 樣本空間大小
)

// Pair 一次擲骰的有序結果
type Pair struct {
	D1 int `json:"d1" yaml:"d1"`
	D2 int `json:"d2" yaml:"d2"`
}

func (p Pair) Sum() int { return p.D1 + p.D2 }

func (p Pair) IsDouble() bool { return p.D1 == p.D2 }

// Valid 兩顆骰都在 1..6
func (p Pair) Valid() bool {
	return p.D1 >= 1 && p.D1 <= Faces && p.D2 >= 1 && p.D2 <= Faces
}

func (p Pair) String() string { return fmt.Sprintf("%d-%d", p.D1, p.D2) }

// Predicate 判斷一組骰子是否為有利結果
type Predicate func(Pair) bool

// Pairs 以 row-major（d1 外層、d2 內層）順序產生 36 組骰子。
// 回傳的序列可以重複走訪，每次都從 1-1 開始。
func Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for d1 := 1; d1 <= Faces; d1++ {
			for d2 := 1; d2 <= Faces; d2++ {
				if !yield(Pair{D1: d1, D2: d2}) {
					return
				}
			}
		}
	}
}

// All 回傳一份新的 36 組骰子切片，順序同 Pairs。
func All() []Pair {
	out := make([]Pair, 0, Combos)
	for p := range Pairs() {
		out = append(out, p)
	}
	return out
}

// Count 計算樣本空間中滿足 pred 的組數
func Count(pred Predicate) int {
	n := 0
	for p := range Pairs() {
		if pred(p) {
			n++
		}
	}
	return n
}

// Tally 與 Count 相同，但同時標記每一格是否有利。
func Tally(pred Predicate) (int, Grid) {
	var g Grid
	n := 0
	for p := range Pairs() {
		if pred(p) {
			g[p.D1-1][p.D2-1] = true
			n++
		}
	}
	return n, g
}

// Grid 6x6 有利結果表：列為第一顆骰、欄為第二顆骰。
type Grid [Faces][Faces]bool

// Has 回報該組骰子是否為有利結果，非法骰值一律 false。
func (g *Grid) Has(p Pair) bool {
	if !p.Valid() {
		return false
	}
	return g[p.D1-1][p.D2-1]
}

// Ways 有利格數
func (g *Grid) Ways() int {
	n := 0
	for i := range g {
		for j := range g[i] {
			if g[i][j] {
				n++
			}
		}
	}
	return n
}

// Favorable 依 row-major 順序列出有利的組合
func (g *Grid) Favorable() []Pair {
	out := make([]Pair, 0, Combos)
	for p := range Pairs() {
		if g.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Rows 把表格轉成每列六個字元的字串，有利為 'x'，對子不利為 '=', 其餘為 '.'。
// JSON 輸出時比 [6][6]bool 易讀。
func (g *Grid) Rows() []string {
	out := make([]string, Faces)
	for i := range g {
		var sb strings.Builder
		for j := range g[i] {
			switch {
			case g[i][j]:
				sb.WriteByte('x')
			case i == j:
				sb.WriteByte('=')
			default:
				sb.WriteByte('.')
			}
		}
		out[i] = sb.String()
	}
	return out
}

// MarshalJSON 以 Rows 形式輸出
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := g.Rows()
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`"` + r + `"`)
	}
	sb.WriteByte(']')
	return []byte(sb.String()), nil
}

// MarshalYAML 以 Rows 形式輸出
func (g Grid) MarshalYAML() (any, error) {
	return g.Rows(), nil
}
