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

package v1

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zintix-labs/bgodds"
	"github.com/zintix-labs/bgodds/dto"
	"github.com/zintix-labs/bgodds/reference"
	"github.com/zintix-labs/bgodds/stats"
)

// Table GET /v1/tables/{kind}?blocked=..&full=..&text=..
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeTableRequest(r, chi.URLParam(r, "kind"))
	if err != nil {
		h.fail(w, "table", err)
		return
	}
	t, err := bgodds.Tables(req.Kind, req.Options)
	if err != nil {
		h.fail(w, "table", err)
		return
	}
	h.respond(w, dto.NewTableResponse(t, req.Text))
}

// Verify GET /v1/reference/verify：公開表格與計算值的比對報告
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	h.respond(w, reference.Verify())
}

// Catalog GET /v1/catalog?format=json|yaml：全部表格一次匯出
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	rd, err := stats.RenderFor(format)
	if err != nil {
		h.fail(w, "catalog", err)
		return
	}
	var b bytes.Buffer
	if _, _, err := bgodds.Export(r.Context(), &b, bgodds.ExportOptions{
		Format:  format,
		Workers: h.cfg.ScenarioWorkers,
	}); err != nil {
		h.fail(w, "catalog", err)
		return
	}
	ct := "application/json; charset=utf-8"
	if _, ok := rd.(*stats.YAMLRender); ok {
		ct = "application/yaml; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Bytes())
}
