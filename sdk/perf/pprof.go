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

// Package perf 以 runtime/pprof 包住一段工作並寫出 profile。
package perf

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/zintix-labs/bgodds/errs"
)

// DefaultDir pprof 檔案寫入路徑
const DefaultDir = "build/profiling"

// Run 依 mode（"", cpu, heap, allocs）執行 exe 並把 profile 寫到 dir/<mode>.pprof。
// exe 的錯誤優先回傳；profile 寫入失敗時回傳 Fatal。
func Run(dir, mode string, exe func() error) error {
	if mode == "" {
		return exe()
	}
	if dir == "" {
		dir = DefaultDir
	}
	switch mode {
	case "cpu":
		return cpu(dir, exe)
	case "heap", "allocs":
		return snapshot(dir, mode, exe)
	}
	return errs.InvalidArgf("unknown pprof mode %q (want cpu|heap|allocs)", mode)
}

func create(dir, mode string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "create pprof dir")
	}
	f, err := os.Create(filepath.Join(dir, mode+".pprof"))
	if err != nil {
		return nil, errs.Wrap(err, "create "+mode+".pprof")
	}
	return f, nil
}

// cpu 可作性能分析，也可拿來當 pgo 的 profile
func cpu(dir string, exe func() error) error {
	f, err := create(dir, "cpu")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return errs.Wrap(err, "start cpu profile")
	}
	err = exe()
	pprof.StopCPUProfile()
	return err
}

// snapshot 在 exe 之後寫一次 heap（in-use）或 allocs（累積配置）快照。
func snapshot(dir, mode string, exe func() error) error {
	if err := exe(); err != nil {
		return err
	}
	if mode == "heap" {
		// 讓快照貼近 live objects
		runtime.GC()
	}
	f, err := create(dir, mode)
	if err != nil {
		return err
	}
	defer f.Close()
	prof := pprof.Lookup(mode)
	if prof == nil {
		return errs.Fatalf("pprof profile %q not found", mode)
	}
	if err := prof.WriteTo(f, 0); err != nil {
		return errs.Wrap(err, "write "+mode+" profile")
	}
	return nil
}
