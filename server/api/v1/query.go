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
)

// Sum GET|POST /v1/sum?sum=7
func (h *Handler) Sum(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQueryRequest(r)
	if err != nil {
		h.fail(w, "sum", err)
		return
	}
	rep, err := bgodds.QuerySum(req.Sum)
	if err != nil {
		h.fail(w, "sum", err)
		return
	}
	h.respond(w, rep)
}

// Entry GET|POST /v1/entry?blocked=2,4
func (h *Handler) Entry(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQueryRequest(r)
	if err != nil {
		h.fail(w, "entry", err)
		return
	}
	rep, err := bgodds.QueryBarEntry(req.Blocked)
	if err != nil {
		h.fail(w, "entry", err)
		return
	}
	h.respond(w, rep)
}

// Hit GET|POST /v1/hit?distance=6
func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQueryRequest(r)
	if err != nil {
		h.fail(w, "hit", err)
		return
	}
	rep, err := bgodds.QueryHit(req.Distance)
	if err != nil {
		h.fail(w, "hit", err)
		return
	}
	h.respond(w, rep)
}

// Shot GET|POST /v1/shot?distance=8&blocked=2,4
func (h *Handler) Shot(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQueryRequest(r)
	if err != nil {
		h.fail(w, "shot", err)
		return
	}
	rep, err := bgodds.QueryShot(req.Distance, req.Blocked)
	if err != nil {
		h.fail(w, "shot", err)
		return
	}
	h.respond(w, rep)
}

// BearOff GET|POST /v1/bearoff?p1=4&p2=2
func (h *Handler) BearOff(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeQueryRequest(r)
	if err != nil {
		h.fail(w, "bearoff", err)
		return
	}
	rep, err := bgodds.QueryBearOff(req.P1, req.P2)
	if err != nil {
		h.fail(w, "bearoff", err)
		return
	}
	h.respond(w, rep)
}
