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

package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zintix-labs/bgodds/server/api"
	"github.com/zintix-labs/bgodds/server/logger"
	"github.com/zintix-labs/bgodds/server/netsvr"
	"github.com/zintix-labs/bgodds/server/svrcfg"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &svrcfg.SvrCfg{
		Addr:           ":0",
		LogMode:        logger.ModeSilence,
		RequestTimeout: 5 * time.Second,
		MaxScenarios:   3,
	}
	if err := cfg.Valid(); err != nil {
		t.Fatalf("cfg.Valid: %v", err)
	}
	svr := netsvr.NewChiServer(cfg.Addr)
	if err := api.RegisterRoutes(svr, cfg); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	ts := httptest.NewServer(svr.Handler())
	t.Cleanup(ts.Close)
	return ts
}

type outcome struct {
	Ways    int    `json:"ways"`
	Percent int    `json:"percent"`
	Odds    string `json:"odds"`
}

type errBody struct {
	Error   string `json:"error"`
	Level   string `json:"level"`
	Invalid bool   `json:"invalid_argument"`
}

func get(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return decode(t, resp, out)
}

func post(t *testing.T, ts *httptest.Server, path, ct, body string, out any) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, ct, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return decode(t, resp, out)
}

func decode(t *testing.T, resp *http.Response, out any) *http.Response {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			t.Fatalf("decode %s: %v", b, err)
		}
	}
	return resp
}

func TestIndexAndHealth(t *testing.T) {
	ts := newTestServer(t)
	var idx struct {
		Name      string   `json:"name"`
		Endpoints []string `json:"endpoints"`
	}
	if resp := get(t, ts, "/", &idx); resp.StatusCode != http.StatusOK || idx.Name != "bgodds" || len(idx.Endpoints) != len(api.Endpoints) {
		t.Fatalf("index = %d %+v", resp.StatusCode, idx)
	}
	var h struct{ Status string }
	if resp := get(t, ts, "/healthz", &h); resp.StatusCode != http.StatusOK || h.Status != "ok" {
		t.Fatalf("health = %d %+v", resp.StatusCode, h)
	}
}

func TestQueries(t *testing.T) {
	ts := newTestServer(t)

	var sum struct {
		Sum int `json:"sum"`
		outcome
	}
	if resp := get(t, ts, "/v1/sum?sum=7", &sum); resp.StatusCode != http.StatusOK || sum.Sum != 7 || sum.Ways != 6 || sum.Percent != 17 {
		t.Fatalf("sum = %d %+v", resp.StatusCode, sum)
	}
	if id := get(t, ts, "/v1/sum?sum=7", nil).Header.Get("X-Request-Id"); id == "" {
		t.Fatalf("missing request id header")
	}

	var entry struct {
		Open []int `json:"open"`
		outcome
	}
	if resp := get(t, ts, "/v1/entry?blocked=2,4", &entry); resp.StatusCode != http.StatusOK || entry.Ways != 32 || len(entry.Open) != 4 {
		t.Fatalf("entry = %d %+v", resp.StatusCode, entry)
	}

	var hit outcome
	if resp := post(t, ts, "/v1/hit", "application/json", `{"distance":6}`, &hit); resp.StatusCode != http.StatusOK || hit.Ways != 17 || hit.Odds != "19 to 17" {
		t.Fatalf("hit = %d %+v", resp.StatusCode, hit)
	}

	var shot outcome
	if resp := get(t, ts, "/v1/shot?distance=8&blocked=2,4", &shot); resp.StatusCode != http.StatusOK || shot.Ways != 4 {
		t.Fatalf("shot = %d %+v", resp.StatusCode, shot)
	}

	var bo struct {
		Total    int `json:"total"`
		TwoRolls int `json:"twoRolls"`
		outcome
	}
	if resp := get(t, ts, "/v1/bearoff?p1=6", &bo); resp.StatusCode != http.StatusOK || bo.Ways != 27 || bo.Percent != 75 || bo.TwoRolls != 94 || bo.Total != 6 {
		t.Fatalf("bearoff = %d %+v", resp.StatusCode, bo)
	}
}

func TestQueryRejectsInvalidArgument(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/v1/sum?sum=13", ""},
		{http.MethodGet, "/v1/sum?sum=x", ""},
		{http.MethodGet, "/v1/hit?distance=0", ""},
		{http.MethodGet, "/v1/entry?blocked=7", ""},
		{http.MethodGet, "/v1/bearoff?p1=3&p2=7", ""},
		{http.MethodPost, "/v1/shot", `{"distance":8,"blocked":[9]}`},
	}
	for _, c := range cases {
		var e errBody
		var resp *http.Response
		if c.method == http.MethodGet {
			resp = get(t, ts, c.path, &e)
		} else {
			resp = post(t, ts, c.path, "application/json", c.body, &e)
		}
		if resp.StatusCode != http.StatusBadRequest || !e.Invalid || e.Level != "warn" {
			t.Fatalf("%s %s = %d %+v", c.method, c.path, resp.StatusCode, e)
		}
	}

	var e errBody
	if resp := post(t, ts, "/v1/hit", "application/json", `{"distanse":6}`, &e); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown field = %d %+v", resp.StatusCode, e)
	}
}

func TestTables(t *testing.T) {
	ts := newTestServer(t)
	var tb struct {
		Kind string            `json:"kind"`
		Rows []json.RawMessage `json:"rows"`
		Text string            `json:"text"`
	}
	if resp := get(t, ts, "/v1/tables/hit", &tb); resp.StatusCode != http.StatusOK || tb.Kind != "hit" || len(tb.Rows) != 12 || tb.Text != "" {
		t.Fatalf("hit table = %d kind=%s rows=%d", resp.StatusCode, tb.Kind, len(tb.Rows))
	}
	tb.Rows, tb.Text = nil, ""
	if resp := get(t, ts, "/v1/tables/bar?full=true&text=true", &tb); resp.StatusCode != http.StatusOK || tb.Kind != "entry" || len(tb.Rows) != 7 || tb.Text == "" {
		t.Fatalf("entry table = %d kind=%s rows=%d", resp.StatusCode, tb.Kind, len(tb.Rows))
	}
	var e errBody
	if resp := get(t, ts, "/v1/tables/dice", &e); resp.StatusCode != http.StatusBadRequest || !e.Invalid {
		t.Fatalf("unknown kind = %d %+v", resp.StatusCode, e)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	type view struct {
		Sum   outcome `json:"sum"`
		Entry outcome `json:"entry"`
	}
	var first struct {
		Token string `json:"token"`
		View  view   `json:"view"`
	}
	resp := post(t, ts, "/v1/session", "application/json",
		`{"token":"","ops":[{"op":"sum","value":9},{"op":"toggle","value":2}]}`, &first)
	if resp.StatusCode != http.StatusOK || first.Token == "" || first.View.Sum.Ways != 4 || first.View.Entry.Ways != 35 {
		t.Fatalf("first = %d %+v", resp.StatusCode, first)
	}

	var second struct {
		Token string `json:"token"`
		View  view   `json:"view"`
	}
	body := `{"token":"` + first.Token + `","ops":[{"op":"blocked","points":[2,4,6]}]}`
	resp = post(t, ts, "/v1/session", "application/json", body, &second)
	if resp.StatusCode != http.StatusOK || second.View.Sum.Ways != 4 || second.View.Entry.Ways != 27 {
		t.Fatalf("second = %d %+v", resp.StatusCode, second)
	}

	var e errBody
	resp = post(t, ts, "/v1/session", "application/json", `{"token":"!!","ops":[]}`, &e)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad token = %d %+v", resp.StatusCode, e)
	}
	resp = post(t, ts, "/v1/session", "application/json", `{"ops":[{"op":"sum","value":1}]}`, &e)
	if resp.StatusCode != http.StatusBadRequest || !e.Invalid {
		t.Fatalf("bad op = %d %+v", resp.StatusCode, e)
	}
}

func TestScenarios(t *testing.T) {
	ts := newTestServer(t)
	var out struct {
		Results []struct {
			Name   string  `json:"name"`
			Kind   string  `json:"kind"`
			Report outcome `json:"report"`
			Error  string  `json:"error"`
		} `json:"results"`
	}
	yml := `
scenarios:
  - name: seven
    kind: sum
    sum: 7
  - name: double-six
    kind: hit
    distance: 12
`
	resp := post(t, ts, "/v1/scenarios", "application/yaml", yml, &out)
	if resp.StatusCode != http.StatusOK || len(out.Results) != 2 {
		t.Fatalf("yaml = %d %+v", resp.StatusCode, out)
	}
	if out.Results[0].Name != "seven" || out.Results[0].Report.Ways != 6 || out.Results[1].Report.Ways != 3 {
		t.Fatalf("results = %+v", out.Results)
	}

	many := `{"scenarios":[{"kind":"sum","sum":2},{"kind":"sum","sum":3},{"kind":"sum","sum":4},{"kind":"sum","sum":5}]}`
	var e errBody
	if resp := post(t, ts, "/v1/scenarios", "application/json", many, &e); resp.StatusCode != http.StatusBadRequest || !e.Invalid {
		t.Fatalf("too many = %d %+v", resp.StatusCode, e)
	}
}

func TestVerifyAndCatalog(t *testing.T) {
	ts := newTestServer(t)
	var rep struct {
		Checked       int `json:"checked"`
		Discrepancies []struct {
			Known bool `json:"known"`
		} `json:"discrepancies"`
	}
	if resp := get(t, ts, "/v1/reference/verify", &rep); resp.StatusCode != http.StatusOK || rep.Checked != 3*(7+12+26) || len(rep.Discrepancies) != 20 {
		t.Fatalf("verify = %d checked=%d n=%d", resp.StatusCode, rep.Checked, len(rep.Discrepancies))
	}

	resp := get(t, ts, "/v1/catalog?format=yaml", nil)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/yaml") {
		t.Fatalf("catalog yaml = %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	var e errBody
	if resp := get(t, ts, "/v1/catalog?format=csv", &e); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("catalog csv = %d %+v", resp.StatusCode, e)
	}
}

func TestGzipNegotiation(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/tables/sum", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("encoding = %q", resp.Header.Get("Content-Encoding"))
	}
}
