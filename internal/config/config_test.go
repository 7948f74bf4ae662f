// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/discrim"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Keys: "a:any"}
	cfg.ApplyDefaults()
	if cfg.Input != "-" || cfg.Format != "jsonl" || cfg.Output != "json" || cfg.Sharing != "exclusive" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		c := Config{Keys: "a:uint8"}
		c.ApplyDefaults()
		return c
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing keys", func(c *Config) { c.Keys = " " }, "keys is required"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "format must be one of"},
		{"bad output", func(c *Config) { c.Output = "yaml" }, "output must be one of"},
		{"bad sharing", func(c *Config) { c.Sharing = "shared" }, "sharing must be one of"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
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

func TestSharingMode(t *testing.T) {
	cfg := Config{Sharing: "synchronized"}
	s, err := cfg.SharingMode()
	if err != nil || s != discrim.Synchronized {
		t.Fatalf("got %v, %v", s, err)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("discrim", []string{"-k", "tier:uint8", "--format", "csv", "-r", "--log-level", "debug", "in.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys != "tier:uint8" || cfg.Format != "csv" || !cfg.Reverse || cfg.Input != "in.csv" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Timestamp {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DISCRIM_KEYS", "vip:bool")
	t.Setenv("DISCRIM_REVERSE", "true")
	t.Setenv("DISCRIM_LOG_FORMAT", "json")
	cfg, err := Load("discrim", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys != "vip:bool" || !cfg.Reverse || cfg.Log.Format != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Input != "-" {
		t.Errorf("input = %q, want stdin", cfg.Input)
	}
}

func TestLoadFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("DISCRIM_KEYS", "vip:bool")
	cfg, err := Load("discrim", []string{"--keys", "tier:uint8"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys != "tier:uint8" {
		t.Errorf("keys = %q", cfg.Keys)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "discrim.yaml")
	body := "keys: region:enum=eu|us\noutput: text\nsharing: synchronized\nlog:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("discrim", []string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys != "region:enum=eu|us" || cfg.Output != "text" || cfg.Sharing != "synchronized" || cfg.Log.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DISCRIM_KEYS=age:int=120\nDISCRIM_OUTPUT=text\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process variables; register them for cleanup.
	t.Setenv("DISCRIM_KEYS", "")
	t.Setenv("DISCRIM_OUTPUT", "")
	os.Unsetenv("DISCRIM_KEYS")
	os.Unsetenv("DISCRIM_OUTPUT")

	cfg, err := Load("discrim", []string{"--env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keys != "age:int=120" || cfg.Output != "text" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("discrim", []string{"--bogus"}); err == nil {
		t.Error("unknown flag accepted")
	}
	if _, err := Load("discrim", []string{"-h"}); !errors.Is(err, ErrHelp) {
		t.Errorf("help: %v", err)
	}
	if _, err := Load("discrim", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "-k", "a:any"}); err == nil {
		t.Error("missing config file accepted")
	}
	if _, err := Load("discrim", []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}); err == nil {
		t.Error("missing env file accepted")
	}
	if _, err := Load("discrim", []string{"-k", "a:any", "--output", "xml"}); err == nil {
		t.Error("invalid output accepted")
	}
}
