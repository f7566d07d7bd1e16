// Package config loads and validates the YAML configuration shared by the
// doxcv CLIs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-doxcv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength    = 4096 // Filesystem paths
	MaxEngineLength  = 100  // Engine command name
	MaxTimeoutLength = 30   // Duration string, e.g. "2m"
)

// Config holds the settings for both generation paths.
type Config struct {
	Source string     `yaml:"source"`
	PDF    PDFConfig  `yaml:"pdf"`
	Site   SiteConfig `yaml:"site"`
}

// PDFConfig defines the typeset résumé path.
type PDFConfig struct {
	Template string `yaml:"template"` // LaTeX template path (empty = embedded default)
	Output   string `yaml:"output"`   // Output PDF path
	Engine   string `yaml:"engine"`   // Typesetting command (default: pdflatex)
	Timeout  string `yaml:"timeout"`  // Per-run timeout, e.g. "2m"
}

// SiteConfig defines the HTML résumé path.
type SiteConfig struct {
	HTML    string `yaml:"html"`    // Page to update in place
	Preview string `yaml:"preview"` // Optional PDF snapshot output path
}

// Validate checks field lengths and known-value fields.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"source", c.Source, MaxPathLength},
		{"pdf.template", c.PDF.Template, MaxPathLength},
		{"pdf.output", c.PDF.Output, MaxPathLength},
		{"pdf.engine", c.PDF.Engine, MaxEngineLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
		{"site.html", c.Site.HTML, MaxPathLength},
		{"site.preview", c.Site.Preview, MaxPathLength},
	} {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name. A string
// containing a path separator is treated as a file path; otherwise it is a
// name searched in standard locations. Returns an error if the file is not
// found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name: current directory
// first, then ~/.config/go-doxcv/, trying .yaml then .yml.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-doxcv", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
