package texrun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sentinel errors for engine invocation.
var (
	ErrEngineFailed   = errors.New("typesetting engine failed")
	ErrEngineNotFound = errors.New("typesetting engine not found")
	ErrNoPDF          = errors.New("engine produced no PDF")
)

// DefaultEngine is the typesetting command used when none is configured.
const DefaultEngine = "pdflatex"

// The engine runs exactly twice so cross-reference layout settles on the
// second pass.
const passes = 2

// Fixed names inside the scratch build directory.
const (
	texName = "cv.tex"
	pdfName = "cv.pdf"
	logName = "cv.log"
)

// Diagnostic trimming on failure.
const (
	outputTailBytes = 2000
	logTailLines    = 50
)

// Compiler compiles LaTeX source to PDF bytes via the external engine.
type Compiler struct {
	Engine string
	Runner CommandRunner
}

// NewCompiler creates a Compiler for the given engine command. An empty
// engine selects DefaultEngine.
func NewCompiler(engine string) *Compiler {
	if engine == "" {
		engine = DefaultEngine
	}
	return &Compiler{Engine: engine, Runner: ExecRunner{}}
}

// Compile writes the source into a scratch directory, runs the engine for
// two passes, and returns the PDF bytes. Both passes must exit zero and the
// PDF file must exist afterward. On failure the error carries the tail of
// the engine output and of the .log file. The scratch directory is removed
// regardless of outcome.
func (c *Compiler) Compile(ctx context.Context, texSource string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "doxcv-build-*")
	if err != nil {
		return nil, fmt.Errorf("creating build directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	texPath := filepath.Join(dir, texName)
	if err := os.WriteFile(texPath, []byte(texSource), 0o600); err != nil {
		return nil, fmt.Errorf("writing %s: %w", texName, err)
	}

	for pass := 1; pass <= passes; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		output, err := c.Runner.Run(ctx, dir, c.Engine, "-interaction=nonstopmode", "-halt-on-error", texName)
		if err != nil {
			var execErr *exec.Error
			if errors.As(err, &execErr) {
				return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, c.Engine)
			}
			return nil, fmt.Errorf("%w: %s pass %d: %v\n%s", ErrEngineFailed, c.Engine, pass, err, diagnostics(output, dir))
		}
	}

	pdf, err := os.ReadFile(filepath.Join(dir, pdfName))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPDF, pdfName)
	}
	return pdf, nil
}

// diagnostics assembles the failure report: the tail of the engine output
// plus, when present, the tail of the .log file.
func diagnostics(output []byte, dir string) string {
	report := tailBytes(output, outputTailBytes)
	if logData, err := os.ReadFile(filepath.Join(dir, logName)); err == nil {
		report += "\n--- last " + fmt.Sprint(logTailLines) + " lines of log ---\n"
		report += tailLines(string(logData), logTailLines)
	}
	return report
}

func tailBytes(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}

func tailLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
