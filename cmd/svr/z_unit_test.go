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

package main

import (
	"testing"
	"time"

	"github.com/zintix-labs/bgodds/server/logger"
)

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BGODDS_ADDR", ":7000")
	t.Setenv("BGODDS_REQUEST_TIMEOUT", "2s")

	cfg, err := loadConfig([]string{"-env", "missing.env", "-addr", ":9000", "-log-mode", "prod"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.LogMode != logger.ModeProd || cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadMode(t *testing.T) {
	if _, err := loadConfig([]string{"-env", "missing.env", "-log-mode", "loud"}); err == nil {
		t.Fatalf("want error for bad log mode")
	}
}
