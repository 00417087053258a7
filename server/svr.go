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

package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/server/api"
	"github.com/zintix-labs/bgodds/server/app"
	"github.com/zintix-labs/bgodds/server/logger"
	"github.com/zintix-labs/bgodds/server/netsvr"
	"github.com/zintix-labs/bgodds/server/svrcfg"
)

// Run 是 server 套件的組裝器與啟動入口：
//  1. 驗證 SvrCfg（未注入 logger 時依 LogMode 建立非同步 logger）。
//  2. 建立 HTTP server（netsvr）。
//  3. 註冊路由與 middleware（api.RegisterRoutes）。
//  4. 阻塞到收到終止信號，回傳停止原因。
func Run(sCfg *svrcfg.SvrCfg) error {
	if sCfg == nil {
		return errs.NewFatal("svr config is required")
	}
	return RunWithSvr(sCfg, netsvr.NewChiServer(sCfg.Addr))
}

// RunWithSvr 與 Run 相同，但由呼叫端注入 NetSvr（自訂 listener、TLS、其他框架的 adapter）。
// svr 若是 ChiAdapter 會要求 Ready() 為 true。
func RunWithSvr(sCfg *svrcfg.SvrCfg, svr netsvr.NetSvr) error {
	if sCfg == nil {
		return errs.NewFatal("svr config is required")
	}
	var async *logger.AsyncHandler
	if sCfg.Log == nil {
		sCfg.Log, async = logger.NewAsync(max(64, sCfg.LogBuffer), sCfg.LogMode)
	}
	if err := sCfg.Valid(); err != nil {
		// logger 可能不可用，額外輸出到 stderr
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if svr == nil {
		return errs.NewFatal("svr is required")
	}
	if s, ok := svr.(*netsvr.ChiAdapter); ok && !s.Ready() {
		return errs.NewFatal("default server is not ready")
	}

	if err := api.RegisterRoutes(svr, sCfg); err != nil {
		return errs.Wrap(err, "register routes failed")
	}

	a := app.New(sCfg.Log)
	a.Register(svr)
	if async != nil {
		a.OnStop(func() {
			if n := async.Dropped(); n > 0 {
				sCfg.Log.Warn("async log dropped records", slog.Uint64("dropped", n))
			}
			async.Close()
		})
	}
	if s, ok := svr.(*netsvr.ChiAdapter); ok {
		sCfg.Log.Info("[bgodds] listening on http://localhost" + s.Address())
	} else {
		sCfg.Log.Info("[bgodds] listening")
	}
	if err := a.Run(); err != nil {
		sCfg.Log.Error("app stopped", slog.Any("err", err))
		return err
	}
	return nil
}
