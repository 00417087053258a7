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
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/zintix-labs/bgodds"
	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/spec"
)

// 防止 body 過大（1MiB）
const maxBody = 1 << 20

// QueryRequest 單次查詢的參數。依查詢種類只會用到其中幾個欄位。
type QueryRequest struct {
	Sum      int          `json:"sum,omitempty"`
	Distance int          `json:"distance,omitempty"`
	Blocked  spec.Blocked `json:"blocked,omitempty"`
	P1       int          `json:"p1,omitempty"`
	P2       int          `json:"p2,omitempty"`
}

// DecodeQueryRequest 會把 HTTP 請求解碼成 QueryRequest。
//
// 支援：
//   - GET：從 query string 讀取 sum/distance/blocked/p1/p2；blocked 為 "2,4" 形式。
//   - POST：從 JSON body 反序列化，blocked 可為 [2,4] 或 "2,4"。
//
// 注意：
//   - 這裡只負責解碼與型別轉換，範圍檢查由計算器負責（回傳 invalid argument）。
//   - POST 會開啟 DisallowUnknownFields()，拼錯欄位直接拒絕。
func DecodeQueryRequest(r *http.Request) (*QueryRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(QueryRequest)

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		var err error
		if req.Sum, err = queryInt(q.Get("sum"), "sum"); err != nil {
			return nil, err
		}
		if req.Distance, err = queryInt(q.Get("distance"), "distance"); err != nil {
			return nil, err
		}
		if req.P1, err = queryInt(q.Get("p1"), "p1"); err != nil {
			return nil, err
		}
		if req.P2, err = queryInt(q.Get("p2"), "p2"); err != nil {
			return nil, err
		}
		if req.Blocked, err = spec.ParseBlocked(q.Get("blocked")); err != nil {
			return nil, err
		}
		return req, nil

	case http.MethodPost:
		if err := decodeJSON(r.Body, req); err != nil {
			return nil, err
		}
		if !req.Blocked.Valid() {
			return nil, errs.InvalidArgf("blocked mask %#x out of range", req.Blocked.Mask())
		}
		return req, nil

	default:
		return nil, errs.NewWarn("method not allowed")
	}
}

func queryInt(s, name string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.InvalidArgf("invalid %s: %q", name, s)
	}
	return v, nil
}

func decodeJSON(body io.Reader, v any) error {
	if body == nil {
		return errs.NewWarn("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errs.WrapWarn(err, "invalid json")
	}
	return nil
}

// TableRequest GET /v1/tables/{kind} 的參數。kind 由路由帶入。
type TableRequest struct {
	Kind    spec.Kind
	Options bgodds.TableOptions
	Text    bool // 附上純文字表格
}

// DecodeTableRequest 讀取 blocked/full/text 以及要高亮的 sum/open/distance/p1/p2。
func DecodeTableRequest(r *http.Request, kind string) (*TableRequest, error) {
	k, err := spec.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	req := &TableRequest{Kind: k, Options: bgodds.DefaultTableOptions()}
	if req.Options.Blocked, err = spec.ParseBlocked(q.Get("blocked")); err != nil {
		return nil, err
	}
	if req.Options.Full, err = queryBool(q.Get("full"), "full"); err != nil {
		return nil, err
	}
	if req.Text, err = queryBool(q.Get("text"), "text"); err != nil {
		return nil, err
	}
	if req.Options.Sum, err = queryInt(q.Get("sum"), "sum"); err != nil {
		return nil, err
	}
	if s := q.Get("open"); s != "" {
		if req.Options.Open, err = queryInt(s, "open"); err != nil {
			return nil, err
		}
	}
	if req.Options.Distance, err = queryInt(q.Get("distance"), "distance"); err != nil {
		return nil, err
	}
	p1, err := queryInt(q.Get("p1"), "p1")
	if err != nil {
		return nil, err
	}
	p2, err := queryInt(q.Get("p2"), "p2")
	if err != nil {
		return nil, err
	}
	if p1 != 0 {
		c, err := spec.NewCheckers(p1, p2)
		if err != nil {
			return nil, err
		}
		req.Options.Checkers = c
	}
	return req, nil
}

func queryBool(s, name string) (bool, error) {
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errs.InvalidArgf("invalid %s: %q", name, s)
	}
	return v, nil
}

// SessionRequest POST /v1/session：帶上一段回傳的 token（空字串為新 Session）與要套用的操作。
type SessionRequest struct {
	Token string      `json:"token"`
	Ops   []bgodds.Op `json:"ops"`
}

func DecodeSessionRequest(r *http.Request) (*SessionRequest, error) {
	req := new(SessionRequest)
	if err := decodeJSON(r.Body, req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeScenarioRequest 依 Content-Type 解析批次檔：
// application/yaml、application/x-yaml、text/yaml 走 YAML，其他一律 JSON。
func DecodeScenarioRequest(r *http.Request) (*spec.ScenarioSet, error) {
	if r.Body == nil {
		return nil, errs.NewWarn("empty body")
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return nil, errs.WrapWarn(err, "read body failed")
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return spec.DecodeScenariosYAML(data)
	}
	return spec.DecodeScenariosJSON(data)
}
