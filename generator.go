package doxcv

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-doxcv/internal/cv"
	"github.com/alnah/go-doxcv/internal/render/latex"
	"github.com/alnah/go-doxcv/internal/texrun"
)

// defaultTimeout bounds one engine run; two passes of a one-page résumé
// finish well inside it.
const defaultTimeout = 2 * time.Minute

// Generator orchestrates the DOX-to-PDF pipeline: parse, render LaTeX
// fragments, fill the template, compile with the external engine.
type Generator struct {
	cfg      generatorConfig
	compiler *texrun.Compiler
}

type generatorConfig struct {
	engine  string
	timeout time.Duration
}

// NewGenerator creates a Generator with default configuration. Use options
// to customize behavior (e.g., WithEngine, WithTimeout).
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{cfg: generatorConfig{timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(g)
	}

	// In-package tests swap compiler.Runner for a stub.
	g.compiler = texrun.NewCompiler(g.cfg.engine)
	return g
}

// GenerateInput holds the inputs of one PDF generation run.
type GenerateInput struct {
	// Source is the full DOX document text.
	Source string
	// Template is the LaTeX template with @@NAME@@-style placeholders.
	Template string
	// TeXOnly skips engine invocation; the result carries only the filled
	// template, for debugging.
	TeXOnly bool
}

// GenerateResult holds the filled template and, unless TeXOnly was set, the
// compiled PDF bytes.
type GenerateResult struct {
	TeX []byte
	PDF []byte
}

// Generate runs the full pipeline. The context bounds the engine
// subprocess; the configured timeout caps the run even when the context
// carries no deadline of its own.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if input.Source == "" {
		return nil, ErrEmptySource
	}
	if input.Template == "" {
		return nil, ErrEmptyTemplate
	}

	resume := cv.ParseResume(input.Source)
	tex := latex.Fill(input.Template, latex.Render(resume))

	res := &GenerateResult{TeX: []byte(tex)}
	if input.TeXOnly {
		return res, nil
	}

	if g.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.timeout)
		defer cancel()
	}

	pdf, err := g.compiler.Compile(ctx, tex)
	if err != nil {
		return nil, fmt.Errorf("compiling PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}
