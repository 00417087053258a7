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
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// lineFilter 回傳 false 表示不印出該行
type lineFilter func(line string) bool

func goCmd(args ...string) *exec.Cmd {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func cleanTestCache() error {
	if err := goCmd("clean", "-testcache").Run(); err != nil {
		return fmt.Errorf("go clean -testcache failed: %w", err)
	}
	return nil
}

// streamGo 合併 stdout/stderr（等同 2>&1），逐行上色後輸出
func streamGo(keep lineFilter, args ...string) error {
	cmd := exec.Command("go", args...)
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start go %s: %w", args[0], err)
	}

	sc := bufio.NewScanner(pipe)
	for sc.Scan() {
		line := sc.Text()
		if !keep(line) {
			continue
		}
		switch {
		case strings.HasPrefix(line, "ok"):
			PrintGreen(line)
		case strings.HasPrefix(line, "FAIL"), strings.Contains(line, "build failed"), strings.Contains(line, "setup failed"):
			PrintRed(line)
		default:
			PrintDefault(line)
		}
	}
	if err := sc.Err(); err != nil {
		PrintYellow(fmt.Sprintf("scanner error: %v", err))
	}
	if err := cmd.Wait(); err != nil {
		return errors.New("go " + args[0] + " finished with errors")
	}
	return nil
}

func taskTest() error {
	PrintGreen("running tests")
	if err := cleanTestCache(); err != nil {
		PrintYellow(err.Error())
	}
	// 只看結果行；編譯錯誤也要看得到
	return streamGo(func(line string) bool {
		return strings.HasPrefix(line, "ok") || strings.HasPrefix(line, "FAIL") ||
			strings.Contains(line, "build failed") || strings.Contains(line, "setup failed")
	}, "test", "./...", "-cover", "-count=1")
}

func taskTestAll() error {
	PrintGreen("running tests (all with coverage)")
	if err := cleanTestCache(); err != nil {
		return err
	}
	return goCmd("test", "./...", "-cover").Run()
}

func taskTestDetail() error {
	PrintGreen("running tests (detail)")
	if err := cleanTestCache(); err != nil {
		return err
	}
	return streamGo(func(line string) bool {
		return !strings.Contains(line, "[no test files]")
	}, "test", "./...", "-v", "-count=1")
}

func taskVerify() error {
	PrintGreen("verifying published tables")
	return goCmd("run", "./cmd/odds", "verify").Run()
}

func taskExport() error {
	for _, f := range []string{"json", "yaml"} {
		PrintBlue("export " + f)
		if err := goCmd("run", "./cmd/odds", "export", "-o", "build/catalog."+f, "-format", f).Run(); err != nil {
			return err
		}
	}
	return nil
}

func taskProfile() error {
	PrintBlue("export with cpu profile")
	return goCmd("run", "./cmd/odds", "export", "-o", "build/catalog.json", "-p", "cpu").Run()
}
