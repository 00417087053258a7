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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestUsage(t *testing.T) {
	if code, _, _ := runCmd(t); code != 2 {
		t.Fatalf("no args code = %d", code)
	}
	if code, _, errOut := runCmd(t, "roll"); code != 2 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("unknown = %d %q", code, errOut)
	}
	if code, out, _ := runCmd(t, "help"); code != 0 || !strings.Contains(out, "odds bearoff") {
		t.Fatalf("help = %d %q", code, out)
	}
	if code, _, _ := runCmd(t, "sum", "-nope"); code != 2 {
		t.Fatalf("bad flag code = %d", code)
	}
}

func TestSumTableOutput(t *testing.T) {
	code, out, errOut := runCmd(t, "sum", "-sum", "7")
	if code != 0 {
		t.Fatalf("code = %d %s", code, errOut)
	}
	if !strings.HasPrefix(out, "Sum 7: 6 of 36 ways (17%)") || !strings.Contains(out, "▶") {
		t.Fatalf("out = %s", out)
	}
}

func TestQueryJSON(t *testing.T) {
	cases := []struct {
		args []string
		ways int
	}{
		{[]string{"sum", "-sum", "2", "-format", "json"}, 1},
		{[]string{"entry", "-blocked", "2,4", "-format", "json"}, 32},
		{[]string{"hit", "-d", "6", "-format", "json"}, 17},
		{[]string{"shot", "-d", "8", "-blocked", "2,4", "-format", "json"}, 4},
		{[]string{"bearoff", "-p1", "6", "-format", "json"}, 27},
	}
	for _, c := range cases {
		code, out, errOut := runCmd(t, c.args...)
		if code != 0 {
			t.Fatalf("%v code = %d %s", c.args, code, errOut)
		}
		var got struct {
			Ways int `json:"ways"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil || got.Ways != c.ways {
			t.Fatalf("%v = %s (%v)", c.args, out, err)
		}
	}
}

func TestQueryErrors(t *testing.T) {
	if code, _, errOut := runCmd(t, "hit", "-d", "13"); code != 1 || !strings.Contains(errOut, "error:") {
		t.Fatalf("hit 13 = %d %q", code, errOut)
	}
	if code, _, _ := runCmd(t, "sum", "-format", "csv"); code != 1 {
		t.Fatalf("csv code = %d", code)
	}
}

func TestBearOffOutsideDefaultTable(t *testing.T) {
	code, out, errOut := runCmd(t, "bearoff", "-p1", "6", "-p2", "5")
	if code != 0 || !strings.Contains(out, "Bear off 5-6") || !strings.Contains(out, "▶") {
		t.Fatalf("code = %d out=%s err=%s", code, out, errOut)
	}
}

func TestTableCommand(t *testing.T) {
	code, out, _ := runCmd(t, "table", "shot", "-blocked", "2,4")
	if code != 0 || !strings.Contains(out, "blocked: 2, 4") {
		t.Fatalf("shot table = %d %s", code, out)
	}
	code, out, _ = runCmd(t, "table", "bearoff", "-full", "-format", "yaml")
	if code != 0 || !strings.Contains(out, "kind: bearoff") {
		t.Fatalf("bearoff yaml = %d %s", code, out)
	}
	if code, _, _ := runCmd(t, "table"); code != 2 {
		t.Fatalf("missing kind code = %d", code)
	}
}

func TestRunScenarioFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "set.yaml")
	data := `
scenarios:
  - name: seven
    kind: sum
    sum: 7
  - name: closed
    kind: entry
    blocked: [1, 2, 3, 4, 5, 6]
`
	if err := os.WriteFile(f, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runCmd(t, "run", "-f", f)
	if code != 0 {
		t.Fatalf("code = %d %s", code, errOut)
	}
	if !strings.Contains(out, "seven") || !strings.Contains(out, "Cannot enter") {
		t.Fatalf("out = %s", out)
	}
	if code, _, _ := runCmd(t, "run"); code != 2 {
		t.Fatalf("missing -f code = %d", code)
	}
}

func TestVerifyCommand(t *testing.T) {
	code, out, errOut := runCmd(t, "verify")
	if code != 0 || !strings.Contains(out, "20 discrepancies (0 unexpected)") {
		t.Fatalf("verify = %d %s %s", code, out, errOut)
	}
}

func TestExportFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "out", "catalog.json")
	code, _, errOut := runCmd(t, "export", "-o", f)
	if code != 0 || !strings.Contains(errOut, "exported 64 shot tables") {
		t.Fatalf("export = %d %s", code, errOut)
	}
	b, err := os.ReadFile(f)
	if err != nil {
		t.Fatal(err)
	}
	var c struct {
		Shot    []json.RawMessage `json:"shot"`
		BearOff []json.RawMessage `json:"bearoff"`
	}
	if err := json.Unmarshal(b, &c); err != nil || len(c.Shot) != 64 || len(c.BearOff) != 27 {
		t.Fatalf("catalog shot=%d bearoff=%d err=%v", len(c.Shot), len(c.BearOff), err)
	}
}
