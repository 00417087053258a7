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

// 開發用任務：go run ./scripts <task>
package main

import (
	"fmt"
	"os"
	"sort"
)

type task struct {
	desc string
	run  func() error
}

var tasks = map[string]task{
	"test":        {"clean test cache, run all tests, print ok/FAIL lines only", taskTest},
	"test-all":    {"run all tests with coverage", taskTestAll},
	"test-detail": {"verbose tests, hide packages without tests", taskTestDetail},
	"verify":      {"compare published odds tables against the engine", taskVerify},
	"export":      {"write build/catalog.json and build/catalog.yaml", taskExport},
	"profile":     {"export with a cpu profile under build/profiling", taskProfile},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	t, ok := tasks[os.Args[1]]
	if !ok {
		PrintYellow(fmt.Sprintf("Unknown task: %s", os.Args[1]))
		usage()
		os.Exit(1)
	}
	if err := t.run(); err != nil {
		PrintRed(err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: go run ./scripts <task>")
	names := make([]string, 0, len(tasks))
	for n := range tasks {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-12s %s\n", n, tasks[n].desc)
	}
}
