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

// Package v1 是機率查詢的 HTTP API。所有回應都是 JSON，錯誤經 httperr 映射。
package v1

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/server/httperr"
	"github.com/zintix-labs/bgodds/server/netsvr"
	"github.com/zintix-labs/bgodds/server/svrcfg"
)

// Handler 持有設定；所有計算都是純函式，不需要其他共享狀態。
type Handler struct {
	cfg *svrcfg.SvrCfg
}

func NewHandler(sCfg *svrcfg.SvrCfg) (*Handler, error) {
	if sCfg == nil || sCfg.Log == nil {
		return nil, errs.NewFatal("v1 handler: config with logger is required")
	}
	return &Handler{cfg: sCfg}, nil
}

// Register 把 v1 路由掛到 r（呼叫端負責 /v1 前綴）。
func (h *Handler) Register(r netsvr.NetRouter) {
	r.Get("/sum", h.Sum)
	r.Post("/sum", h.Sum)
	r.Get("/entry", h.Entry)
	r.Post("/entry", h.Entry)
	r.Get("/hit", h.Hit)
	r.Post("/hit", h.Hit)
	r.Get("/shot", h.Shot)
	r.Post("/shot", h.Shot)
	r.Get("/bearoff", h.BearOff)
	r.Post("/bearoff", h.BearOff)

	r.Get("/tables/{kind}", h.Table)
	r.Post("/session", h.Session)
	r.Post("/scenarios", h.Scenarios)
	r.Get("/reference/verify", h.Verify)
	r.Get("/catalog", h.Catalog)
}

// fail 記錄值得注意的錯誤後寫回錯誤本文
func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	httperr.Log(h.cfg.Log, msg, err)
	httperr.Errs(w, err)
}

// respond 先編碼到記憶體再寫出，保證不會寫到一半才出錯。
func (h *Handler) respond(w http.ResponseWriter, v any) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(v); err != nil {
		h.fail(w, "encode response", errs.Wrap(err, "encode response failed"))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Bytes())
}
