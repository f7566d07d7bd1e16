package doxcv

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-doxcv/internal/fileutil"
)

// A4 page dimensions in inches for the preview snapshot.
const (
	previewPaperWidth  = 8.27
	previewPaperHeight = 11.69
	previewMargin      = 0.4
)

// Previewer renders the updated HTML page to a PDF snapshot using headless
// Chrome. Rod downloads a managed Chromium on first run if none is found.
type Previewer struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewPreviewer creates a Previewer. A zero timeout uses the library
// default.
func NewPreviewer(timeout time.Duration) *Previewer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Previewer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (p *Previewer) ensureBrowser() error {
	if p.browser != nil {
		return nil
	}

	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	p.browser = rod.New().ControlURL(u)
	if err := p.browser.Connect(); err != nil {
		p.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Render loads the HTML in headless Chrome and returns PDF bytes.
func (p *Previewer) Render(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if htmlContent == "" {
		return nil, ErrEmptyHTML
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := p.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := p.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(previewPaperWidth),
		PaperHeight:     floatPtr(previewPaperHeight),
		MarginTop:       floatPtr(previewMargin),
		MarginBottom:    floatPtr(previewMargin),
		MarginLeft:      floatPtr(previewMargin),
		MarginRight:     floatPtr(previewMargin),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// Close releases browser resources.
func (p *Previewer) Close() error {
	if p.browser != nil {
		err := p.browser.Close()
		p.browser = nil
		return err
	}
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
