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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zintix-labs/bgodds"
	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/reference"
	"github.com/zintix-labs/bgodds/sdk/dice"
	"github.com/zintix-labs/bgodds/sdk/perf"
	"github.com/zintix-labs/bgodds/spec"
	"github.com/zintix-labs/bgodds/stats"
)

var errUsage = errors.New("usage")

var printer = message.NewPrinter(language.English)

// newFlags 每個子命令共用 -format
func newFlags(name, def string, errOut io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	format := fs.String("format", def, "output: table|json|yaml")
	return fs, format
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected argument %q\n", fs.Arg(0))
		return errUsage
	}
	return nil
}

// emit table 格式呼叫 text，其餘交給 stats 的 renderer
func emit(out io.Writer, format string, v any, text func() (string, error)) error {
	if format == "" || format == "table" || format == "text" {
		s, err := text()
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, s)
		return err
	}
	r, err := stats.RenderFor(format)
	if err != nil {
		return err
	}
	return r.Write(out, v)
}

// report 標題行 + 高亮目前選取的整張表 + 6x6 有利結果
func report(kind spec.Kind, opt bgodds.TableOptions, headline string, g *dice.Grid) (string, error) {
	t, err := bgodds.Tables(kind, opt)
	if err != nil {
		return "", err
	}
	return headline + "\n\n" + t.Text() + "\n" + stats.GridText(g), nil
}

func headline(title string, o stats.Outcome) string {
	s := printer.Sprintf("%s: %d of 36 ways (%d%%)", title, o.Ways, o.Percent)
	if o.Odds != "" {
		s += ", " + o.Odds
	}
	return s
}

func cmdSum(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("sum", "table", errOut)
	sum := fs.Int("sum", 7, "dice total 2..12")
	if err := parse(fs, args); err != nil {
		return err
	}
	rep, err := bgodds.QuerySum(*sum)
	if err != nil {
		return err
	}
	return emit(out, *format, rep, func() (string, error) {
		opt := bgodds.DefaultTableOptions()
		opt.Sum = rep.Sum
		return report(spec.KindSum, opt, headline("Sum "+strconv.Itoa(rep.Sum), rep.Outcome), &rep.Grid)
	})
}

func cmdEntry(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("entry", "table", errOut)
	blocked := fs.String("blocked", "", "blocked home points, e.g. 2,4")
	if err := parse(fs, args); err != nil {
		return err
	}
	b, err := spec.ParseBlocked(*blocked)
	if err != nil {
		return err
	}
	rep, err := bgodds.QueryBarEntry(b)
	if err != nil {
		return err
	}
	return emit(out, *format, rep, func() (string, error) {
		opt := bgodds.DefaultTableOptions()
		opt.Open, opt.Full = len(rep.Open), true
		return report(spec.KindEntry, opt, headline("Enter from bar (blocked: "+b.String()+")", rep.Outcome), &rep.Grid)
	})
}

func cmdHit(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("hit", "table", errOut)
	d := fs.Int("d", 6, "distance to the blot 1..12")
	if err := parse(fs, args); err != nil {
		return err
	}
	rep, err := bgodds.QueryHit(*d)
	if err != nil {
		return err
	}
	return emit(out, *format, rep, func() (string, error) {
		opt := bgodds.DefaultTableOptions()
		opt.Distance = rep.Distance
		return report(spec.KindHit, opt, headline("Hit at "+strconv.Itoa(rep.Distance), rep.Outcome), &rep.Grid)
	})
}

func cmdShot(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("shot", "table", errOut)
	d := fs.Int("d", 6, "distance to the blot 1..12")
	blocked := fs.String("blocked", "", "blocked intermediate points, e.g. 2,4")
	if err := parse(fs, args); err != nil {
		return err
	}
	b, err := spec.ParseBlocked(*blocked)
	if err != nil {
		return err
	}
	rep, err := bgodds.QueryShot(*d, b)
	if err != nil {
		return err
	}
	return emit(out, *format, rep, func() (string, error) {
		opt := bgodds.DefaultTableOptions()
		opt.Distance, opt.Blocked = rep.Distance, b
		title := "Shot at " + strconv.Itoa(rep.Distance) + " (blocked: " + b.String() + ")"
		return report(spec.KindShot, opt, headline(title, rep.Outcome), &rep.Grid)
	})
}

func cmdBearOff(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("bearoff", "table", errOut)
	p1 := fs.Int("p1", 1, "point of the first checker 1..6")
	p2 := fs.Int("p2", 0, "point of the second checker 1..6, 0 for none")
	if err := parse(fs, args); err != nil {
		return err
	}
	rep, err := bgodds.QueryBearOff(*p1, *p2)
	if err != nil {
		return err
	}
	return emit(out, *format, rep, func() (string, error) {
		opt := bgodds.DefaultTableOptions()
		opt.Checkers = rep.Checkers
		// 預設表只列總和 <= 8 的組合
		opt.Full = rep.Total > 8
		title := "Bear off " + rep.Checkers.Key()
		line := headline(title, rep.Outcome) + printer.Sprintf(", within two rolls ~%d%%", rep.TwoRolls)
		return report(spec.KindBearOff, opt, line, &rep.Grid)
	})
}

func cmdTable(args []string, out, errOut io.Writer) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(errOut, "usage: odds table <sum|entry|hit|shot|bearoff> [flags]")
		return errUsage
	}
	kind, err := spec.ParseKind(args[0])
	if err != nil {
		return err
	}
	fs, format := newFlags("table", "table", errOut)
	blocked := fs.String("blocked", "", "blocked points for the shot table")
	full := fs.Bool("full", false, "entry: include the all-blocked row; bearoff: every pair")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}
	opt := bgodds.DefaultTableOptions()
	opt.Full = *full
	if opt.Blocked, err = spec.ParseBlocked(*blocked); err != nil {
		return err
	}
	t, err := bgodds.Tables(kind, opt)
	if err != nil {
		return err
	}
	return emit(out, *format, t, func() (string, error) { return t.Text(), nil })
}

func cmdRun(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("run", "table", errOut)
	file := fs.String("f", "", "scenario file (.yaml, .yml or .json)")
	workers := fs.Int("workers", 0, "parallel workers, 0 for GOMAXPROCS")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *file == "" {
		fmt.Fprintln(errOut, "run: -f is required")
		return errUsage
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	var set *spec.ScenarioSet
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".json":
		set, err = spec.DecodeScenariosJSON(data)
	default:
		set, err = spec.DecodeScenariosYAML(data)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := bgodds.RunScenarios(ctx, set, *workers)
	if err != nil {
		return err
	}
	return emit(out, *format, res, func() (string, error) { return scenarioText(res), nil })
}

func scenarioText(res []bgodds.ScenarioResult) string {
	t := &stats.Table{
		Title:   "Scenarios",
		Headers: []string{"Name", "Kind", "Ways", "Percent", "Odds / Error"},
		Mark:    -1,
	}
	for _, r := range res {
		if r.Error != "" {
			t.Rows = append(t.Rows, []string{r.Name, string(r.Kind), "-", "-", r.Error})
			continue
		}
		o := outcomeOf(r.Report)
		t.Rows = append(t.Rows, []string{
			r.Name, string(r.Kind), strconv.Itoa(o.Ways), strconv.Itoa(o.Percent) + "%", o.Odds,
		})
	}
	return t.String()
}

func outcomeOf(rep any) stats.Outcome {
	switch r := rep.(type) {
	case *bgodds.SumReport:
		return r.Outcome
	case *bgodds.EntryReport:
		return r.Outcome
	case *bgodds.HitReport:
		return r.Outcome
	case *bgodds.ShotReport:
		return r.Outcome
	case *bgodds.BearOffReport:
		return r.Outcome
	}
	return stats.Outcome{}
}

func cmdVerify(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("verify", "table", errOut)
	if err := parse(fs, args); err != nil {
		return err
	}
	rep := reference.Verify()
	if err := emit(out, *format, rep, func() (string, error) { return verifyText(rep), nil }); err != nil {
		return err
	}
	if n := rep.Unexpected(); n > 0 {
		return errs.Fatalf("%d unexpected discrepancies", n)
	}
	return nil
}

func verifyText(rep *reference.Report) string {
	t := &stats.Table{
		Title:   "Published figures vs computed",
		Headers: []string{"Table", "Key", "Field", "Published", "Computed", "Known"},
		Mark:    -1,
	}
	for _, d := range rep.Discrepancies {
		t.Rows = append(t.Rows, []string{d.Table, d.Key, d.Field, d.Published, d.Computed, strconv.FormatBool(d.Known)})
	}
	head := printer.Sprintf("checked %d figures, %d discrepancies (%d unexpected)\n",
		rep.Checked, len(rep.Discrepancies), rep.Unexpected())
	if len(t.Rows) == 0 {
		return head
	}
	return head + "\n" + t.String()
}

func cmdExport(args []string, out, errOut io.Writer) error {
	fs, format := newFlags("export", "json", errOut)
	output := fs.String("o", "-", "output file, - for stdout")
	workers := fs.Int("workers", 0, "parallel workers, 0 for GOMAXPROCS")
	pprofMode := fs.String("p", "", "pprof: '', cpu, heap, allocs")
	if err := parse(fs, args); err != nil {
		return err
	}

	w := out
	if *output != "-" {
		if dir := filepath.Dir(*output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	opt := bgodds.ExportOptions{
		Format:   *format,
		Workers:  *workers,
		Progress: *output != "-",
		BarOut:   errOut,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return perf.Run(perf.DefaultDir, *pprofMode, func() error {
		c, used, err := bgodds.Export(ctx, w, opt)
		if err != nil {
			return err
		}
		printer.Fprintf(errOut, "exported %d shot tables, %d bear-off rows in %s\n", len(c.Shot), len(c.BearOff), used)
		return nil
	})
}
