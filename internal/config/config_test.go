package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	want := &Config{
		Content: "content",
		Static:  "static",
		Output:  "public",
		Engine:  "builtin",
		PDF:     PDFConfig{Timeout: "30s"},
	}
	if diff := cmp.Diff(want, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
content: docs
output: site
basePath: /blog/
engine: goldmark
style: default
assets:
  basePath: ./theme
pdf:
  enabled: true
  timeout: 45s
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	want := &Config{
		Content:  "docs",
		Static:   "static", // default kept
		Output:   "site",
		BasePath: "/blog/",
		Engine:   "goldmark",
		Style:    "default",
		Assets:   AssetsConfig{BasePath: "./theme"},
		PDF:      PDFConfig{Enabled: true, Timeout: "45s"},
		Workers:  4,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}

	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil || timeout != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v, %v, want 45s", timeout, err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown field", "contnet: docs\n", ErrConfigParse},
		{"wrong type", "workers: many\n", ErrConfigParse},
		{"empty file", "", ErrConfigParse},
		{"bad engine", "engine: pandoc\n", ErrInvalidValue},
		{"negative workers", "workers: -1\n", ErrInvalidValue},
		{"bad timeout", "pdf:\n  timeout: soon\n", ErrInvalidValue},
		{"timeout too long", "pdf:\n  timeout: 1h\n", ErrInvalidValue},
		{"base path too long", "basePath: /" + strings.Repeat("a", MaxBasePathLength) + "\n", ErrFieldTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(path) error = %v, want ErrConfigNotFound", err)
	}

	_, err := LoadConfig("no-such-config-name-xyz")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(name) error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "no-such-config-name-xyz.yaml") {
		t.Errorf("error should list tried paths, got %v", err)
	}
}

func TestValidate_EngineCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Engine = "GoldMark"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("f", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("value over limit: error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "11 chars, max 10") {
		t.Errorf("error message = %q, want lengths", err.Error())
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("local candidates = %v, want [site.yaml site.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), "/go-mdsite/site.") {
			t.Errorf("user candidate %q is outside the go-mdsite config dir", p)
		}
	}
}
