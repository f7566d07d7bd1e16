package main

import (
	"errors"
	"fmt"
	"testing"

	doxcv "github.com/alnah/go-doxcv"
	"github.com/alnah/go-doxcv/internal/config"
	"github.com/alnah/go-doxcv/internal/texrun"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"engine failed", fmt.Errorf("compiling PDF: %w", texrun.ErrEngineFailed), ExitEngine},
		{"engine missing", texrun.ErrEngineNotFound, ExitEngine},
		{"no pdf", texrun.ErrNoPDF, ExitEngine},
		{"read source", fmt.Errorf("%w: cv.dox", ErrReadSource), ExitIO},
		{"no source", ErrNoSource, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty source", doxcv.ErrEmptySource, ExitUsage},
		{"bad timeout", ErrInvalidTimeout, ExitUsage},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
