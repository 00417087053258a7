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

package api

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/bgodds/dto"
	v1 "github.com/zintix-labs/bgodds/server/api/v1"
	"github.com/zintix-labs/bgodds/server/netsvr"
	"github.com/zintix-labs/bgodds/server/netsvr/middleware"
	"github.com/zintix-labs/bgodds/server/svrcfg"
)

// Endpoints 首頁列出的路由
var Endpoints = []string{
	"GET  /healthz",
	"GET  /v1/sum?sum=7",
	"GET  /v1/entry?blocked=2,4",
	"GET  /v1/hit?distance=6",
	"GET  /v1/shot?distance=8&blocked=2,4",
	"GET  /v1/bearoff?p1=4&p2=2",
	"GET  /v1/tables/{sum|entry|hit|shot|bearoff}",
	"GET  /v1/reference/verify",
	"GET  /v1/catalog?format=json|yaml",
	"POST /v1/session",
	"POST /v1/scenarios",
}

// RegisterRoutes 註冊 middleware 與所有路由
func RegisterRoutes(svr netsvr.NetSvr, sCfg *svrcfg.SvrCfg) error {
	h, err := v1.NewHandler(sCfg)
	if err != nil {
		return err
	}
	registerMiddleware(svr, sCfg) // 1. 註冊 middleware
	registerIndex(svr)            // 2. 註冊主頁
	svr.Group("/v1", h.Register)  // 3. 註冊 v1 api
	return nil
}

// 註冊 middleware（順序即外到內）
func registerMiddleware(svr netsvr.NetSvr, sCfg *svrcfg.SvrCfg) {
	svr.Use(middleware.RequestID)
	svr.Use(middleware.AccessLog(sCfg.Log))
	svr.Use(middleware.Recover(sCfg.Log))
	svr.Use(middleware.Timeout(sCfg.RequestTimeout))
	svr.Use(middleware.Compression)
}

// 註冊主頁
func registerIndex(svr netsvr.NetSvr) {
	svr.Get("/", indexHandler)
	svr.Get("/healthz", healthHandler)
}

type index struct {
	Name      string   `json:"name"`
	Endpoints []string `json:"endpoints"`
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, index{Name: "bgodds", Endpoints: Endpoints})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, dto.HealthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
