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

package errs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zintix-labs/bgodds/errs"
)

func TestInvalidArgf(t *testing.T) {
	err := errs.InvalidArgf("distance %d out of range [1,12]", 13)
	if err.ErrLv != errs.Warn || !errs.IsInvalidArgument(err) {
		t.Fatalf("err = %+v", err)
	}
	if !strings.Contains(err.Error(), "errlv=warn distance 13") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestWrapKeepsLevel(t *testing.T) {
	inner := errs.InvalidArgf("bad sum")
	w := errs.Wrap(inner, "op #1 (sum)")
	if w.ErrLv != errs.Warn || !errs.IsInvalidArgument(w) {
		t.Fatalf("wrap of warn = %+v", w)
	}
	f := errs.Wrap(context.Canceled, "run scenarios")
	if f.ErrLv != errs.Fatal || !errors.Is(f, context.Canceled) {
		t.Fatalf("wrap of std error = %+v", f)
	}
	ww := errs.WrapWithExtra(inner, "invalid scenario", "#2")
	if !strings.Contains(ww.Error(), "extra: #2") {
		t.Fatalf("extra missing: %q", ww.Error())
	}
}

func TestWrapWarnAndAsErr(t *testing.T) {
	w := errs.WrapWarn(errors.New("unexpected EOF"), "invalid json")
	if w.ErrLv != errs.Warn || errs.IsInvalidArgument(w) {
		t.Fatalf("WrapWarn = %+v", w)
	}
	if e, ok := errs.AsErr(w); !ok || e != w {
		t.Fatalf("AsErr failed")
	}
	if _, ok := errs.AsErr(errors.New("plain")); ok {
		t.Fatalf("AsErr on plain error")
	}
	if errs.ErrLv(errs.Fatal) != "fatal" || errs.ErrLv(errs.ErrLevel(99)) != "" {
		t.Fatalf("ErrLv names")
	}
}
