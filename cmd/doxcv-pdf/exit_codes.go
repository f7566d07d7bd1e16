package main

import (
	"errors"
	"os"

	doxcv "github.com/alnah/go-doxcv"
	"github.com/alnah/go-doxcv/internal/assets"
	"github.com/alnah/go-doxcv/internal/config"
	"github.com/alnah/go-doxcv/internal/texrun"
)

// Exit codes for doxcv CLIs.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitEngine  = 4 // Typesetting engine errors
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, texrun.ErrEngineFailed) ||
		errors.Is(err, texrun.ErrEngineNotFound) ||
		errors.Is(err, texrun.ErrNoPDF) {
		return ExitEngine
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteTeX) ||
		errors.Is(err, ErrNoSource) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, doxcv.ErrEmptySource) ||
		errors.Is(err, doxcv.ErrEmptyTemplate) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidSourceExt) {
		return ExitUsage
	}

	return ExitGeneral
}
