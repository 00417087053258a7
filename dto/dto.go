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
	"github.com/zintix-labs/bgodds"
	"github.com/zintix-labs/bgodds/spec"
)

// TableResponse 一張表；Text 只有在請求 text=true 時才帶。
type TableResponse struct {
	Kind spec.Kind `json:"kind"`
	Rows any       `json:"rows"`
	Text string    `json:"text,omitempty"`
}

func NewTableResponse(t *bgodds.TableResult, withText bool) TableResponse {
	out := TableResponse{Kind: t.Kind, Rows: t.Rows}
	if withText {
		out.Text = t.Text()
	}
	return out
}

// SessionResponse 回傳新的 token 與以新狀態重算的結果
type SessionResponse struct {
	Token string       `json:"token"`
	View  *bgodds.View `json:"view"`
}

type ScenariosResponse struct {
	Results []bgodds.ScenarioResult `json:"results"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
