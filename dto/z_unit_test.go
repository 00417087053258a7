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

package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/spec"
)

func TestDecodeQueryRequestGET(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/shot?distance=7&blocked=2,4&p1=3&p2=5&sum=9", nil)
	req, err := DecodeQueryRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := spec.NewBlocked(2, 4)
	if req.Distance != 7 || req.Blocked != want || req.P1 != 3 || req.P2 != 5 || req.Sum != 9 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeQueryRequestGETRejects(t *testing.T) {
	for _, u := range []string{"/v1/hit?distance=x", "/v1/entry?blocked=9", "/v1/bearoff?p1=1.5"} {
		r := httptest.NewRequest(http.MethodGet, u, nil)
		if _, err := DecodeQueryRequest(r); !errs.IsInvalidArgument(err) {
			t.Fatalf("%s: expected invalid argument, got %v", u, err)
		}
	}
}

func TestDecodeQueryRequestPOST(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/v1/entry", strings.NewReader(`{"blocked":[1,6]}`))
	req, err := DecodeQueryRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Blocked.Has(1) || !req.Blocked.Has(6) || req.Blocked.Len() != 2 {
		t.Fatalf("unexpected blocked: %v", req.Blocked)
	}

	r = httptest.NewRequest(http.MethodPost, "/v1/entry", strings.NewReader(`{"blockd":[1]}`))
	_, err = DecodeQueryRequest(r)
	e, ok := errs.AsErr(err)
	if !ok || e.ErrLv != errs.Warn {
		t.Fatalf("unknown field should be a warn error, got %v", err)
	}

	r = httptest.NewRequest(http.MethodDelete, "/v1/entry", nil)
	if _, err := DecodeQueryRequest(r); err == nil {
		t.Fatalf("DELETE should be rejected")
	}
}

func TestDecodeTableRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/tables/bearoff?full=true&text=1&p1=5&p2=3", nil)
	req, err := DecodeTableRequest(r, "bearoff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Kind != spec.KindBearOff || !req.Options.Full || !req.Text || req.Options.Checkers.Total() != 8 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Options.Open != -1 {
		t.Fatalf("open should default to -1, got %d", req.Options.Open)
	}
	if _, err := DecodeTableRequest(r, "dice"); !errs.IsInvalidArgument(err) {
		t.Fatalf("unknown kind: %v", err)
	}
}

func TestDecodeScenarioRequestByContentType(t *testing.T) {
	yml := "scenarios:\n  - {name: a, kind: sum, sum: 7}\n"
	r := httptest.NewRequest(http.MethodPost, "/v1/scenarios", strings.NewReader(yml))
	r.Header.Set("Content-Type", "application/yaml; charset=utf-8")
	set, err := DecodeScenarioRequest(r)
	if err != nil || len(set.Scenarios) != 1 {
		t.Fatalf("yaml: %v", err)
	}

	js := `{"scenarios":[{"kind":"hit","distance":4},{"kind":"bar","blocked":"1,2"}]}`
	r = httptest.NewRequest(http.MethodPost, "/v1/scenarios", strings.NewReader(js))
	r.Header.Set("Content-Type", "application/json")
	set, err = DecodeScenarioRequest(r)
	if err != nil || len(set.Scenarios) != 2 || set.Scenarios[1].Kind != spec.KindEntry {
		t.Fatalf("json: %v %+v", err, set)
	}
}

func TestDecodeSessionRequest(t *testing.T) {
	body := `{"token":"","ops":[{"op":"sum","value":8},{"op":"toggle","value":3}]}`
	r := httptest.NewRequest(http.MethodPost, "/v1/session", strings.NewReader(body))
	req, err := DecodeSessionRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Ops) != 2 || req.Ops[1].Op != "toggle" || req.Ops[1].Value != 3 {
		t.Fatalf("unexpected ops: %+v", req.Ops)
	}
}
