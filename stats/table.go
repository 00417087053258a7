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
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zintix-labs/bgodds/sdk/dice"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// 高亮列前綴
const marker = "▶"

// Table 純文字表格：標題、欄名、各列字串。Mark 為要高亮的列索引，-1 表示不標記。
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Mark    int
}

// String 以等寬方框輸出，欄寬以 runewidth 計算（▶、中文皆可對齊）。
func (t *Table) String() string {
	p := message.NewPrinter(lang)

	cols := len(t.Headers)
	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.Rows {
		for i := 0; i < cols && i < len(r); i++ {
			if w := runewidth.StringWidth(r[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// 每欄左右各留一格，再加上高亮欄
	markW := runewidth.StringWidth(marker) + 1
	inner := markW
	for _, w := range widths {
		inner += w + 3
	}

	var sb strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", markW)
	for _, w := range widths {
		divider += "+" + strings.Repeat("-", w+2)
	}
	divider += "+\n"

	sb.WriteString(top)
	if t.Title != "" {
		tw := runewidth.StringWidth(t.Title)
		left := (inner - tw) / 2
		right := inner - tw - left
		sb.WriteString(p.Sprintf("|%s%s%s|\n", blank(left), t.Title, blank(right)))
		sb.WriteString(divider)
	}
	sb.WriteString(t.line(blank(markW), t.Headers, widths))
	sb.WriteString(divider)
	for i, r := range t.Rows {
		m := blank(markW)
		if i == t.Mark {
			m = marker + " "
		}
		sb.WriteString(t.line(m, r, widths))
	}
	sb.WriteString(divider)
	return sb.String()
}

func (t *Table) line(mark string, cells []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	sb.WriteString(mark)
	for i, w := range widths {
		c := ""
		if i < len(cells) {
			c = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(c)
		sb.WriteString(blank(w - runewidth.StringWidth(c)))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

func pct(v int) string { return strconv.Itoa(v) + "%" }

// SumTable 點數和分布，mark 為要高亮的點數和（無則 0）
func SumTable(rows []SumRow, mark int) *Table {
	p := message.NewPrinter(lang)
	t := &Table{Title: "Sum of two dice", Headers: []string{"Sum", "Ways", "%", "Probability"}, Mark: -1}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Sum), strconv.Itoa(r.Ways), pct(r.Percent), p.Sprintf("%.1f%%", r.Probability),
		})
		if r.Sum == mark {
			t.Mark = i
		}
	}
	return t
}

// EntryTable 依空點數量的上場機率，mark 為要高亮的空點數（無則 -1）
func EntryTable(rows []EntryRow, mark int) *Table {
	t := &Table{Title: "Entering from the bar", Headers: []string{"Open", "Blocked", "Ways", "%", "Odds"}, Mark: -1}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Open), strconv.Itoa(r.Blocked), strconv.Itoa(r.Ways), pct(r.Percent), r.Odds,
		})
		if r.Open == mark {
			t.Mark = i
		}
	}
	return t
}

// HitTable 直接擊中機率，mark 為要高亮的距離（無則 0）
func HitTable(rows []HitRow, mark int) *Table {
	return distTable("Direct shot (doubles included)", "Odds against", distRows(rows, func(r HitRow) (int, Outcome) { return r.Distance, r.Outcome }), mark)
}

// ShotTable 封鎖路徑下的打擊機率，mark 為要高亮的距離（無則 0）
func ShotTable(rows []ShotRow, mark int) *Table {
	return distTable("Shot through blocked points", "Odds", distRows(rows, func(r ShotRow) (int, Outcome) { return r.Distance, r.Outcome }), mark)
}

type distRow struct {
	d int
	o Outcome
}

func distRows[T any](rows []T, f func(T) (int, Outcome)) []distRow {
	out := make([]distRow, 0, len(rows))
	for _, r := range rows {
		d, o := f(r)
		out = append(out, distRow{d: d, o: o})
	}
	return out
}

func distTable(title, oddsHeader string, rows []distRow, mark int) *Table {
	t := &Table{Title: title, Headers: []string{"Distance", "Ways", "%", oddsHeader}, Mark: -1}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.d), strconv.Itoa(r.o.Ways), pct(r.o.Percent), r.o.Odds})
		if r.d == mark {
			t.Mark = i
		}
	}
	return t
}

// BearOffTable 下棋機率，高亮 p1、p2 對應的列（單顆 p2 為 0，順序不拘；p1 為 0 表示不標記）
func BearOffTable(rows []BearOffRow, p1, p2 int) *Table {
	lo, hi := p1, p2
	if p2 != 0 && p2 < p1 {
		lo, hi = p2, p1
	}
	t := &Table{Title: "Bearing off", Headers: []string{"Checkers", "Ways", "1 roll", "2 rolls"}, Mark: -1}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{r.Label, strconv.Itoa(r.Ways), pct(r.Percent), pct(r.TwoRolls)})
		if lo != 0 && r.P1 == lo && r.P2 == hi {
			t.Mark = i
		}
	}
	return t
}

// GridText 6x6 骰面格：有利組合印 "d1-d2"，其他印 "·"。
func GridText(g *dice.Grid) string {
	var sb strings.Builder
	cell := 5
	sb.WriteString(blank(3))
	for d2 := 1; d2 <= dice.Faces; d2++ {
		h := strconv.Itoa(d2)
		sb.WriteString(center(h, cell))
	}
	sb.WriteString("\n")
	for d1 := 1; d1 <= dice.Faces; d1++ {
		sb.WriteString(strconv.Itoa(d1) + "  ")
		for d2 := 1; d2 <= dice.Faces; d2++ {
			c := "·"
			pr := dice.Pair{D1: d1, D2: d2}
			if g.Has(pr) {
				c = pr.String()
			}
			sb.WriteString(center(c, cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func center(s string, w int) string {
	sw := runewidth.StringWidth(s)
	left := (w - sw) / 2
	return blank(left) + s + blank(w-sw-left)
}
