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

package bgodds

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/spec"
)

// ScenarioResult 批次檔中一筆查詢的結果。Report 為對應種類的 *XxxReport。
type ScenarioResult struct {
	Name   string    `json:"name"             yaml:"name"`
	Kind   spec.Kind `json:"kind"             yaml:"kind"`
	Report any       `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string    `json:"error,omitempty"  yaml:"error,omitempty"`
}

// RunScenarios 平行計算批次檔中的每一筆查詢，結果順序與輸入相同。
//
// 單筆查詢的參數錯誤記在該筆的 Error，不影響其他筆；只有 ctx 取消才會中止整批。
// workers <= 0 時使用 GOMAXPROCS。
func RunScenarios(ctx context.Context, set *spec.ScenarioSet, workers int) ([]ScenarioResult, error) {
	if set == nil || len(set.Scenarios) == 0 {
		return nil, errs.InvalidArgf("no scenarios")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]ScenarioResult, len(set.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range set.Scenarios {
		sc := set.Scenarios[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := ScenarioResult{Name: sc.Name, Kind: sc.Kind}
			rep, err := Query(sc)
			if err != nil {
				r.Error = err.Error()
			} else {
				r.Report = rep
			}
			// 每個 goroutine 只寫自己的索引
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "run scenarios canceled")
	}
	return out, nil
}
