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
	"net/http"

	"github.com/zintix-labs/bgodds"
	"github.com/zintix-labs/bgodds/dto"
	"github.com/zintix-labs/bgodds/errs"
)

// Session POST /v1/session
//
// 伺服器不保存狀態：呼叫端帶上一次的 token 與操作列表，回傳新 token 與重算結果。
// 任一操作失敗則整批不生效。
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeSessionRequest(r)
	if err != nil {
		h.fail(w, "session", err)
		return
	}
	s, err := bgodds.RestoreSession(req.Token)
	if err != nil {
		h.fail(w, "session", err)
		return
	}
	if err := s.Apply(req.Ops...); err != nil {
		h.fail(w, "session", err)
		return
	}
	view, err := s.View()
	if err != nil {
		h.fail(w, "session", errs.Wrap(err, "session view failed"))
		return
	}
	h.respond(w, dto.SessionResponse{Token: s.Snapshot(), View: view})
}

// Scenarios POST /v1/scenarios（JSON 或 YAML 批次檔）
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	set, err := dto.DecodeScenarioRequest(r)
	if err != nil {
		h.fail(w, "scenarios", err)
		return
	}
	if n := len(set.Scenarios); n > h.cfg.MaxScenarios {
		h.fail(w, "scenarios", errs.InvalidArgf("too many scenarios: %d > %d", n, h.cfg.MaxScenarios))
		return
	}
	res, err := bgodds.RunScenarios(r.Context(), set, h.cfg.ScenarioWorkers)
	if err != nil {
		h.fail(w, "scenarios", err)
		return
	}
	h.respond(w, dto.ScenariosResponse{Results: res})
}
