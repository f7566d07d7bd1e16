package config

// Notes:
// - LoadConfig: path vs name dispatch, strict parsing, no silent fallback
// - Validate: per-field length limits

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
source: cv.dox
pdf:
  template: templates/sidebar.tex
  output: out/resume.pdf
  engine: xelatex
  timeout: 3m
site:
  html: public/resume.html
  preview: out/resume-web.pdf
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Source != "cv.dox" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.PDF.Engine != "xelatex" || cfg.PDF.Timeout != "3m" {
		t.Errorf("PDF = %+v", cfg.PDF)
	}
	if cfg.Site.HTML != "public/resume.html" {
		t.Errorf("Site = %+v", cfg.Site)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			setup:   func(t *testing.T) string { return "" },
			wantErr: ErrEmptyConfigName,
		},
		{
			name: "missing file path",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.yaml")
			},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "unknown field rejected",
			setup: func(t *testing.T) string {
				return writeConfig(t, "source: cv.dox\nbogus_field: true\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				return writeConfig(t, "source: [unclosed\n")
			},
			wantErr: ErrConfigParse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.setup(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "empty config valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "engine too long",
			mutate:  func(c *Config) { c.PDF.Engine = strings.Repeat("x", MaxEngineLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "source path too long",
			mutate:  func(c *Config) { c.Source = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "limits are inclusive",
			mutate: func(c *Config) { c.PDF.Timeout = strings.Repeat("1", MaxTimeoutLength) },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	if !isFilePath("dir/cv.yaml") {
		t.Error("slash path not detected")
	}
	if isFilePath("cv") {
		t.Error("bare name detected as path")
	}
}
