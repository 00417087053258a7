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

package dice_test

import (
	"encoding/json"
	"testing"

	"github.com/zintix-labs/bgodds/sdk/dice"
)

func TestPairsRowMajor(t *testing.T) {
	all := dice.All()
	if len(all) != dice.Combos {
		t.Fatalf("expected %d pairs, got %d", dice.Combos, len(all))
	}
	if all[0] != (dice.Pair{D1: 1, D2: 1}) || all[1] != (dice.Pair{D1: 1, D2: 2}) || all[6] != (dice.Pair{D1: 2, D2: 1}) {
		t.Fatalf("unexpected order: %v", all[:7])
	}
	if all[35] != (dice.Pair{D1: 6, D2: 6}) {
		t.Fatalf("last pair got %v", all[35])
	}
}

func TestPairsRestartable(t *testing.T) {
	seq := dice.Pairs()
	first := 0
	for range seq {
		first++
	}
	second := 0
	for p := range seq {
		if second == 0 && p.String() != "1-1" {
			t.Fatalf("second pass should restart at 1-1, got %s", p)
		}
		second++
	}
	if first != 36 || second != 36 {
		t.Fatalf("passes got %d and %d", first, second)
	}

	// 提前中止不應 panic
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
}

func TestCountAndTally(t *testing.T) {
	doubles := func(p dice.Pair) bool { return p.IsDouble() }
	if got := dice.Count(doubles); got != 6 {
		t.Fatalf("doubles got %d want 6", got)
	}
	n, g := dice.Tally(doubles)
	if n != 6 || g.Ways() != 6 {
		t.Fatalf("tally got %d / %d", n, g.Ways())
	}
	if !g.Has(dice.Pair{D1: 4, D2: 4}) || g.Has(dice.Pair{D1: 4, D2: 3}) {
		t.Fatalf("unexpected grid content: %v", g.Rows())
	}
	if g.Has(dice.Pair{D1: 0, D2: 7}) {
		t.Fatalf("invalid pair must not be favorable")
	}
	fav := g.Favorable()
	if len(fav) != 6 || fav[0].String() != "1-1" || fav[5].String() != "6-6" {
		t.Fatalf("favorable got %v", fav)
	}
}

func TestGridRowsJSON(t *testing.T) {
	_, g := dice.Tally(func(p dice.Pair) bool { return p.D1 == 1 })
	rows := g.Rows()
	if rows[0] != "xxxxxx" || rows[1] != ".=...." {
		t.Fatalf("rows got %v", rows)
	}
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back []string
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 6 || back[0] != "xxxxxx" {
		t.Fatalf("json rows got %v", back)
	}
}
