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
	"io"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/reference"
	"github.com/zintix-labs/bgodds/sdk/calc"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

// 封鎖集合的所有可能：2^6
const blockPatterns = 1 << spec.MaxPoint

// ShotSet 某一個封鎖集合下的 shot 表
type ShotSet struct {
	Blocked spec.Blocked    `json:"blocked" yaml:"blocked"`
	Rows    []stats.ShotRow `json:"rows"    yaml:"rows"`
}

// Catalog 所有表格的完整匯出
type Catalog struct {
	Sum       []stats.SumRow     `json:"sum"       yaml:"sum"`
	Entry     []stats.EntryRow   `json:"entry"     yaml:"entry"`
	Hit       []stats.HitRow     `json:"hit"       yaml:"hit"`
	Shot      []ShotSet          `json:"shot"      yaml:"shot"`
	BearOff   []stats.BearOffRow `json:"bearoff"   yaml:"bearoff"`
	Reference *reference.Report  `json:"reference" yaml:"reference"`
}

// ExportOptions Export 的參數
type ExportOptions struct {
	Format   string // json | yaml
	Workers  int    // <= 0 時使用 GOMAXPROCS
	Progress bool   // 顯示進度條
	BarOut   io.Writer
}

// BuildCatalog 產生完整目錄：shot 表涵蓋全部 64 種封鎖集合，依 mask 排序。
func BuildCatalog(ctx context.Context, opt ExportOptions) (*Catalog, time.Duration, error) {
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bar := pb.StartNew(blockPatterns + 1)
	if !opt.Progress {
		bar.SetWriter(io.Discard)
	} else if opt.BarOut != nil {
		bar.SetWriter(opt.BarOut)
	}
	defer bar.Finish()

	c := &Catalog{
		Sum:     calc.SumTable(),
		Entry:   calc.EntryTableFull(),
		Hit:     calc.HitTable(),
		Shot:    make([]ShotSet, blockPatterns),
		BearOff: calc.BearOffTableAll(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for m := range blockPatterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := spec.BlockedFromMask(uint8(m))
			if err != nil {
				return err
			}
			rows, err := calc.ShotTable(b)
			if err != nil {
				return err
			}
			c.Shot[m] = ShotSet{Blocked: b, Rows: rows}
			bar.Increment()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, errs.Wrap(err, "build catalog failed")
	}
	c.Reference = reference.Verify()
	bar.Increment()

	return c, time.Since(bar.StartTime()), nil
}

// Export 產生完整目錄並以指定格式寫入 w
func Export(ctx context.Context, w io.Writer, opt ExportOptions) (*Catalog, time.Duration, error) {
	r, err := stats.RenderFor(opt.Format)
	if err != nil {
		return nil, 0, err
	}
	c, used, err := BuildCatalog(ctx, opt)
	if err != nil {
		return nil, 0, err
	}
	if err := r.Write(w, c); err != nil {
		return nil, 0, errs.Wrap(err, "write catalog failed")
	}
	return c, used, nil
}
