package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg.Filter != "*" || cfg.Color != "auto" || cfg.Trace {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "filter: \"*.go\"\ncolor: never\ntrace: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filter != "*.go" {
		t.Errorf("Filter = %q, want *.go", cfg.Filter)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
	if !cfg.Trace {
		t.Errorf("Trace = false, want true")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("trace: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filter != "*" || cfg.Color != "auto" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "bad_yaml", content: ":\n\t-"},
		{name: "bad_color", content: "color: sometimes\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load accepted malformed config %q", tc.content)
			}
		})
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/custom/depthls.yaml")
	if got := DefaultPath(); got != "/custom/depthls.yaml" {
		t.Errorf("DefaultPath = %q, want env override", got)
	}
}
