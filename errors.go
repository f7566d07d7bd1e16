package doxcv

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource   = errors.New("source document cannot be empty")
	ErrEmptyTemplate = errors.New("template cannot be empty")
	ErrEmptyHTML     = errors.New("HTML document cannot be empty")

	// Preview rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
