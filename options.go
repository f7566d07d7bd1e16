package doxcv

import (
	"time"
)

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithEngine sets the typesetting engine command (default: pdflatex).
func WithEngine(engine string) GeneratorOption {
	return func(g *Generator) { g.cfg.engine = engine }
}

// WithTimeout caps the engine run time. Zero disables the cap, leaving the
// caller's context in charge.
func WithTimeout(d time.Duration) GeneratorOption {
	return func(g *Generator) { g.cfg.timeout = d }
}
