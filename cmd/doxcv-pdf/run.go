package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	doxcv "github.com/alnah/go-doxcv"
	"github.com/alnah/go-doxcv/internal/assets"
	"github.com/alnah/go-doxcv/internal/config"
	"github.com/alnah/go-doxcv/internal/hints"
	"github.com/alnah/go-doxcv/internal/texrun"
)

// Sentinel errors for CLI operations.
var (
	ErrNoSource         = errors.New("no source document: pass source.dox or set source in the config")
	ErrReadSource       = errors.New("failed to read source document")
	ErrReadTemplate     = errors.New("failed to read template")
	ErrWritePDF         = errors.New("failed to write PDF")
	ErrWriteTeX         = errors.New("failed to write TeX")
	ErrInvalidTimeout   = errors.New("invalid timeout")
	ErrInvalidSourceExt = errors.New("source must have a .dox extension")
)

const defaultOutput = "resume.pdf"

// run resolves flags against the config, reads the inputs, and delegates to
// the library Generator.
func run(flags *pdfFlags, args []string) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				err = fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return err
		}
		cfg = loaded
	}

	sourcePath := cfg.Source
	if len(args) > 0 {
		sourcePath = args[0]
	}
	if sourcePath == "" {
		return ErrNoSource
	}
	if !strings.HasSuffix(sourcePath, ".dox") {
		return fmt.Errorf("%w: got %q", ErrInvalidSourceExt, sourcePath)
	}

	source, err := os.ReadFile(sourcePath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	template, err := resolveTemplate(firstNonEmpty(flags.template, cfg.PDF.Template))
	if err != nil {
		return err
	}

	engine := firstNonEmpty(flags.engine, cfg.PDF.Engine)
	timeout, err := resolveTimeout(firstNonEmpty(flags.timeout, cfg.PDF.Timeout))
	if err != nil {
		return err
	}

	opts := []doxcv.GeneratorOption{doxcv.WithEngine(engine)}
	if timeout > 0 {
		opts = append(opts, doxcv.WithTimeout(timeout))
	}
	gen := doxcv.NewGenerator(opts...)

	output := firstNonEmpty(flags.output, cfg.PDF.Output, defaultOutput)

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Parsing %s\n", sourcePath)
	}

	result, err := gen.Generate(context.Background(), doxcv.GenerateInput{
		Source:   string(source),
		Template: template,
		TeXOnly:  flags.texOnly,
	})
	if err != nil {
		switch {
		case errors.Is(err, texrun.ErrEngineNotFound):
			err = fmt.Errorf("%w%s", err, hints.ForEngineNotFound(firstNonEmpty(engine, texrun.DefaultEngine)))
		case errors.Is(err, texrun.ErrEngineFailed):
			err = fmt.Errorf("%w%s", err, hints.ForEngineFailure())
		}
		return err
	}

	if flags.tex || flags.texOnly {
		texPath := strings.TrimSuffix(output, ".pdf") + ".tex"
		if err := os.WriteFile(texPath, result.TeX, 0o600); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteTeX, err)
		}
		if !flags.quiet {
			fmt.Printf("Created %s\n", texPath)
		}
	}

	if flags.texOnly {
		return nil
	}

	if err := os.WriteFile(output, result.PDF, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	if !flags.quiet {
		fmt.Printf("Created %s\n", output)
	}
	return nil
}

// resolveTemplate reads the template file, or loads the embedded default
// when no path is configured.
func resolveTemplate(path string) (string, error) {
	if path == "" {
		return assets.LoadTemplate(assets.DefaultTemplateName)
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	return string(content), nil
}

func resolveTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
