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

package logger_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/server/logger"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestParseMode(t *testing.T) {
	cases := map[string]logger.LogMode{
		"":            logger.ModeDev,
		"dev":         logger.ModeDev,
		"ModeProd":    logger.ModeProd,
		" PROD ":      logger.ModeProd,
		"silence":     logger.ModeSilence,
		"ModeSilence": logger.ModeSilence,
	}
	for in, want := range cases {
		got, err := logger.ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := logger.ParseMode("loud"); !errs.IsInvalidArgument(err) {
		t.Fatalf("unknown mode should be invalid argument, got %v", err)
	}

	var m logger.LogMode
	if err := m.UnmarshalText([]byte("prod")); err != nil || m != logger.ModeProd || m.String() != "prod" {
		t.Fatalf("UnmarshalText: %v %v", m, err)
	}
}

func TestAsyncHandlerDrainsOnClose(t *testing.T) {
	var out syncBuffer
	log, ah := logger.NewAsyncTo(&out, 64, logger.ModeProd)
	for i := 0; i < 10; i++ {
		log.Info("http.access", "i", i)
	}
	ah.Close()
	if n := strings.Count(out.String(), `"msg":"http.access"`); n+int(ah.Dropped()) != 10 {
		t.Fatalf("written %d + dropped %d != 10", n, ah.Dropped())
	}

	log.Info("after close")
	if strings.Contains(out.String(), "after close") {
		t.Fatalf("records after Close must be dropped")
	}
	if ah.Dropped() == 0 {
		t.Fatalf("drop counter should include the post-close record")
	}
}

func TestSilenceWritesNothing(t *testing.T) {
	var out syncBuffer
	log, ah := logger.NewAsyncTo(&out, 8, logger.ModeSilence)
	log.Error("boom")
	ah.Close()
	if out.String() != "" {
		t.Fatalf("silence mode wrote %q", out.String())
	}
}
