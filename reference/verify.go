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

package reference

import (
	"strconv"

	"github.com/zintix-labs/bgodds/sdk/calc"
	"github.com/zintix-labs/bgodds/spec"
)

// Discrepancy 出版數字與計算結果的一處差異
type Discrepancy struct {
	Table     string `json:"table"     yaml:"table"`
	Key       string `json:"key"       yaml:"key"`
	Field     string `json:"field"     yaml:"field"`
	Published string `json:"published" yaml:"published"`
	Computed  string `json:"computed"  yaml:"computed"`
	Known     bool   `json:"known"     yaml:"known"` // 已知且有文件記載的差異
}

// Report Verify 的結果
type Report struct {
	Checked       int           `json:"checked"       yaml:"checked"`
	Discrepancies []Discrepancy `json:"discrepancies" yaml:"discrepancies"`
}

// Unexpected 排除已知差異後剩下的數量
func (r *Report) Unexpected() int {
	n := 0
	for _, d := range r.Discrepancies {
		if !d.Known {
			n++
		}
	}
	return n
}

type checker struct {
	r *Report
}

func (c *checker) num(table, key, field string, published, computed int, known bool) {
	c.r.Checked++
	if published != computed {
		c.r.Discrepancies = append(c.r.Discrepancies, Discrepancy{
			Table: table, Key: key, Field: field,
			Published: strconv.Itoa(published), Computed: strconv.Itoa(computed),
			Known: known,
		})
	}
}

func (c *checker) text(table, key, field, published, computed string) {
	c.r.Checked++
	if published != computed {
		c.r.Discrepancies = append(c.r.Discrepancies, Discrepancy{
			Table: table, Key: key, Field: field, Published: published, Computed: computed,
		})
	}
}

// Verify 逐一比對出版表中的每個數字與計算器的結果。
func Verify() *Report {
	c := &checker{r: &Report{}}

	for _, f := range Entry {
		key := strconv.Itoa(f.Open)
		row, err := calc.EntryRowFor(spec.MaxPoint - f.Open)
		if err != nil {
			c.text("entry", key, "open", key, err.Error())
			continue
		}
		c.num("entry", key, "ways", f.Ways, row.Ways, false)
		c.num("entry", key, "percent", f.Percent, row.Percent, false)
		c.text("entry", key, "odds", f.Odds, row.Odds)
	}

	for _, f := range Hit {
		key := strconv.Itoa(f.Distance)
		o, err := calc.HitStats(spec.Distance(f.Distance))
		if err != nil {
			c.text("hit", key, "distance", key, err.Error())
			continue
		}
		c.num("hit", key, "ways", f.Ways, o.Ways, false)
		c.num("hit", key, "percent", f.Percent, o.Percent, false)
		c.text("hit", key, "odds", f.Odds, o.Odds)
	}

	for _, f := range BearOff {
		o, two, err := calc.BearOffStats(spec.Checkers{P1: spec.Point(f.P1), P2: spec.Point(f.P2)})
		if err != nil {
			c.text("bearoff", f.Key, "points", f.Key, err.Error())
			continue
		}
		c.num("bearoff", f.Key, "ways", f.Ways, o.Ways, false)
		c.num("bearoff", f.Key, "percent", f.Percent, o.Percent, false)
		// 兩擲近似值與出版的精確值本來就不同
		c.num("bearoff", f.Key, "twoRolls", f.TwoRolls, two, true)
	}
	return c.r
}
