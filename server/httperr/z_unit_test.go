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

package httperr_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/server/httperr"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.InvalidArgf("point 7"), http.StatusBadRequest},
		{errs.NewFatal("boom"), http.StatusInternalServerError},
		{errs.Wrap(context.DeadlineExceeded, "slow"), http.StatusGatewayTimeout},
		{context.Canceled, http.StatusRequestTimeout},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := httperr.StatusCode(c.err); got != c.want {
			t.Fatalf("StatusCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestErrsWritesJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Errs(rec, errs.InvalidArgf("distance %d out of range", 13))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	var b httperr.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("body: %v", err)
	}
	if !b.Invalid || b.Level != "warn" || b.Error == "" {
		t.Fatalf("unexpected body: %+v", b)
	}

	rec = httptest.NewRecorder()
	httperr.Errs(rec, errs.NewFatal("secret detail"))
	_ = json.Unmarshal(rec.Body.Bytes(), &b)
	if rec.Code != 500 || b.Error != "Internal Server Error" {
		t.Fatalf("5xx should hide details: %d %+v", rec.Code, b)
	}
}
