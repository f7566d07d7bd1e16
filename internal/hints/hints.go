// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForEngineNotFound returns hints when the typesetting engine cannot be
// started, usually because no TeX distribution is installed.
func ForEngineNotFound(engine string) string {
	return format("install a TeX distribution providing " + engine + ", or point --engine at one")
}

// ForEngineFailure returns a hint for compilation failures.
func ForEngineFailure() string {
	return format("the tail of the engine log above usually names the offending line")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-doxcv") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForMissingMarkers returns a hint when an HTML page lacks a marker pair.
func ForMissingMarkers(start, end string) string {
	return format("add " + start + " and " + end + " to the page to make the region updatable")
}

// ForBrowserConnect returns hints for preview rendering failures. Detects
// container/CI environments and suggests the relevant rod variables.
func ForBrowserConnect() string {
	var hs []string
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""
	if inCI && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hs = append(hs, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hs = append(hs, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	return formatHints(hs)
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hs []string) string {
	if len(hs) == 0 {
		return ""
	}
	return format(strings.Join(hs, "; "))
}
