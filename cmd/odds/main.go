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

// Command odds 在終端機查詢兩顆骰子的雙陸棋機率。
//
//	odds sum -sum 7
//	odds shot -d 8 -blocked 2,4
//	odds table bearoff -full
//	odds run -f scenarios.yaml -format yaml
//	odds export -o build/catalog.json -p cpu
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	name  string
	usage string
	exec  func(args []string, out, errOut io.Writer) error
}

var commands = []command{
	{"sum", "sum -sum 2..12", cmdSum},
	{"entry", "entry -blocked 2,4", cmdEntry},
	{"hit", "hit -d 1..12", cmdHit},
	{"shot", "shot -d 1..12 -blocked 2,4", cmdShot},
	{"bearoff", "bearoff -p1 1..6 [-p2 1..6]", cmdBearOff},
	{"table", "table <sum|entry|hit|shot|bearoff> [-blocked ..] [-full]", cmdTable},
	{"run", "run -f scenarios.(yaml|json) [-workers n]", cmdRun},
	{"verify", "verify", cmdVerify},
	{"export", "export -o file [-format json|yaml] [-p cpu|heap|allocs]", cmdExport},
}

// run 回傳 exit code：0 成功、1 執行錯誤、2 用法錯誤
func run(args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		usage(errOut)
		return 2
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if err := c.exec(args[1:], out, errOut); err != nil {
			if errors.Is(err, errUsage) {
				return 2
			}
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		return 0
	}
	if args[0] == "-h" || args[0] == "help" {
		usage(out)
		return 0
	}
	fmt.Fprintf(errOut, "unknown command %q\n", args[0])
	usage(errOut)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: odds <command> [flags] [-format table|json|yaml]")
	for _, c := range commands {
		fmt.Fprintln(w, "  odds", c.usage)
	}
}
