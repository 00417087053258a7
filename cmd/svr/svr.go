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
	"flag"
	"fmt"
	"os"

	"github.com/zintix-labs/bgodds/server"
	"github.com/zintix-labs/bgodds/server/logger"
	"github.com/zintix-labs/bgodds/server/svrcfg"
	_ "go.uber.org/automaxprocs"
)

// 啟動機率查詢 HTTP 服務。設定來源：flag > 環境變數 > .env > 預設值。
func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := server.Run(cfg); err != nil {
		os.Exit(1)
	}
}

func loadConfig(args []string) (*svrcfg.SvrCfg, error) {
	fs := flag.NewFlagSet("svr", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "dotenv file, missing file is ignored")
	addr := fs.String("addr", "", "listen address, e.g. :5808")
	logMode := fs.String("log-mode", "", "log mode: dev|prod|silence")
	timeout := fs.Duration("timeout", 0, "per request timeout")
	workers := fs.Int("workers", 0, "scenario workers, 0 for GOMAXPROCS")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := svrcfg.Load(*envFile)
	if err != nil {
		return nil, err
	}
	// 只有明確給定的 flag 才覆蓋
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "log-mode":
			m, err := logger.ParseMode(*logMode)
			if err != nil {
				ferr = err
				return
			}
			cfg.LogMode = m
		case "timeout":
			cfg.RequestTimeout = *timeout
		case "workers":
			cfg.ScenarioWorkers = *workers
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	return cfg, nil
}
