// Package texrun drives the external typesetting engine. The engine is an
// opaque collaborator: it receives a .tex file in a scratch directory and
// either produces a PDF or a diagnostic log.
package texrun

import (
	"context"
	"os/exec"
)

// CommandRunner abstracts subprocess execution so tests can stub the engine
// without a TeX installation.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (output []byte, err error)
}

// ExecRunner implements CommandRunner using os/exec. Output is the combined
// stdout and stderr of the process, which engines interleave freely.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Compile-time interface check.
var _ CommandRunner = ExecRunner{}
