package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	doxcv "github.com/alnah/go-doxcv"
	"github.com/alnah/go-doxcv/internal/config"
	"github.com/alnah/go-doxcv/internal/hints"
	"github.com/alnah/go-doxcv/internal/render/web"
)

// Sentinel errors for CLI operations.
var (
	ErrNoSource     = errors.New("no source document: pass source.dox or set source in the config")
	ErrNoHTML       = errors.New("no HTML page: pass --html or set site.html in the config")
	ErrReadSource   = errors.New("failed to read source document")
	ErrReadHTML     = errors.New("failed to read HTML page")
	ErrWriteHTML    = errors.New("failed to write HTML page")
	ErrWritePreview = errors.New("failed to write preview PDF")
)

// runPaths holds the resolved file paths of one invocation.
type runPaths struct {
	source  string
	html    string
	preview string
}

// run resolves flags against the config and performs one update, or keeps
// updating under --watch until interrupted.
func run(flags *siteFlags, args []string) error {
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

	paths := runPaths{
		source:  cfg.Source,
		html:    firstNonEmpty(flags.html, cfg.Site.HTML),
		preview: firstNonEmpty(flags.preview, cfg.Site.Preview),
	}
	if len(args) > 0 {
		paths.source = args[0]
	}
	if paths.source == "" {
		return ErrNoSource
	}
	if paths.html == "" {
		return ErrNoHTML
	}

	if flags.watch {
		return watch(flags, paths)
	}
	return updateOnce(context.Background(), flags, paths)
}

// updateOnce reads the source and page, splices the rendered sections, and
// writes the page back (or to stdout under --dry-run).
func updateOnce(ctx context.Context, flags *siteFlags, paths runPaths) error {
	source, err := os.ReadFile(paths.source) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	page, err := os.ReadFile(paths.html) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadHTML, err)
	}

	result, err := doxcv.NewUpdater().Update(ctx, doxcv.UpdateInput{
		Source: string(source),
		HTML:   string(page),
	})
	if err != nil {
		return err
	}

	for _, key := range result.Missing {
		region, _ := web.RegionFor(key)
		fmt.Fprintf(os.Stderr, "warning: markers for %s not found%s\n",
			key, hints.ForMissingMarkers(region.Start, region.End))
	}

	if flags.dryRun {
		fmt.Print(result.HTML)
		return nil
	}

	if err := os.WriteFile(paths.html, []byte(result.HTML), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	if !flags.quiet {
		fmt.Printf("Updated %s\n", paths.html)
	}

	if paths.preview != "" {
		if err := writePreview(ctx, result.HTML, paths.preview); err != nil {
			return err
		}
		if !flags.quiet {
			fmt.Printf("Created %s\n", paths.preview)
		}
	}
	return nil
}

// writePreview renders the updated page to a PDF snapshot via headless
// Chrome.
func writePreview(ctx context.Context, html, outPath string) error {
	previewer := doxcv.NewPreviewer(0)
	defer func() { _ = previewer.Close() }()

	pdf, err := previewer.Render(ctx, html)
	if err != nil {
		if errors.Is(err, doxcv.ErrBrowserConnect) {
			err = fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		return err
	}
	if err := os.WriteFile(outPath, pdf, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
