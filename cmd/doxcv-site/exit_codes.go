package main

import (
	"errors"
	"os"

	doxcv "github.com/alnah/go-doxcv"
	"github.com/alnah/go-doxcv/internal/config"
)

// Exit codes for doxcv CLIs.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during preview
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, doxcv.ErrBrowserConnect) ||
		errors.Is(err, doxcv.ErrPageCreate) ||
		errors.Is(err, doxcv.ErrPageLoad) ||
		errors.Is(err, doxcv.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, ErrNoSource) ||
		errors.Is(err, ErrNoHTML) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, doxcv.ErrEmptySource) ||
		errors.Is(err, doxcv.ErrEmptyHTML) {
		return ExitUsage
	}

	return ExitGeneral
}
