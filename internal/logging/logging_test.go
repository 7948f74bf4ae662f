// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" {
		t.Errorf("defaults = %+v", cfg)
	}

	cfg = Config{Level: "DEBUG", Format: "JSON"}
	cfg.ApplyDefaults()
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Errorf("case not folded: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Level: "info", Format: "json"}, ""},
		{"disabled", Config{Level: "disabled", Format: "console"}, ""},
		{"bad level", Config{Level: "loud", Format: "json"}, "log.level must be one of"},
		{"bad format", Config{Level: "info", Format: "xml"}, "log.format must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json"}, &buf)
	l, id := WithRunID(l)
	cl := WithComponent(l, "reader")
	cl.Debug().Int("records", 3).Msg("decoded")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not JSON: %q", buf.String())
	}
	if line["level"] != "debug" || line["message"] != "decoded" {
		t.Errorf("line = %v", line)
	}
	if line[FieldRunID] != id || line[FieldComponent] != "reader" {
		t.Errorf("line = %v", line)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q: %v", id, err)
	}
	if line["records"] != float64(3) {
		t.Errorf("records = %v", line["records"])
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json"}, &buf)
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}
	l.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn not logged: %q", buf.String())
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "nope", Format: "json"}, &buf)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output %q", buf.String())
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "console", NoColor: true, Timestamp: true}, &buf)
	l.Info().Str("keys", "tier:uint8").Msg("grouping")
	out := buf.String()
	if !strings.Contains(out, "INF") || !strings.Contains(out, "grouping") || !strings.Contains(out, "keys=tier:uint8") {
		t.Fatalf("console output %q", out)
	}
}
