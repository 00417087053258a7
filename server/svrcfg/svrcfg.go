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

// Package svrcfg 是 HTTP server 的設定。
//
// 來源優先序：flag > 環境變數 > .env 檔 > 預設值。
// .env 只補上尚未設定的環境變數，不會覆蓋。
package svrcfg

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/server/logger"
)

type SvrCfg struct {
	Addr            string         `env:"BGODDS_ADDR"             envDefault:":5808"`
	LogMode         logger.LogMode `env:"BGODDS_LOG_MODE"         envDefault:"dev"`
	LogBuffer       int            `env:"BGODDS_LOG_BUFFER"       envDefault:"4096"`
	RequestTimeout  time.Duration  `env:"BGODDS_REQUEST_TIMEOUT"  envDefault:"5s"`
	ScenarioWorkers int            `env:"BGODDS_SCENARIO_WORKERS" envDefault:"0"`
	MaxScenarios    int            `env:"BGODDS_MAX_SCENARIOS"    envDefault:"1000"`

	Log *slog.Logger `env:"-"`
}

// Load 讀取 .env（不存在就略過）後解析環境變數。files 為空時讀取工作目錄下的 .env。
func Load(files ...string) (*SvrCfg, error) {
	if err := loadDotEnv(files...); err != nil {
		return nil, err
	}
	cfg := new(SvrCfg)
	if err := env.Parse(cfg); err != nil {
		return nil, errs.Wrap(err, "parse env")
	}
	return cfg, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	exist := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errs.Wrap(err, "stat "+f)
		}
		exist = append(exist, f)
	}
	if len(exist) == 0 {
		return nil
	}
	if err := godotenv.Load(exist...); err != nil {
		return errs.Wrap(err, "load "+strings.Join(exist, ","))
	}
	return nil
}

func (sc *SvrCfg) Valid() error {
	if sc.Log != nil {
		if ah, ok := sc.Log.Handler().(*logger.AsyncHandler); ok && !ah.Ready() {
			return errs.NewFatal("nil default log handler: async handler is nil")
		}
	} else {
		sc.Log = logger.NewDefaultLogger(sc.LogMode)
	}

	if sc.Addr == "" || !strings.Contains(sc.Addr, ":") {
		return errs.Fatalf("invalid listen address %q", sc.Addr)
	}
	if sc.RequestTimeout <= 0 {
		return errs.Fatalf("request timeout must > 0, got %s", sc.RequestTimeout)
	}
	// 資源管理：批次查詢一次最多 1..10000 筆
	sc.MaxScenarios = max(1, sc.MaxScenarios)
	sc.MaxScenarios = min(10000, sc.MaxScenarios)
	sc.ScenarioWorkers = max(0, sc.ScenarioWorkers)
	sc.LogBuffer = max(64, sc.LogBuffer)
	return nil
}
