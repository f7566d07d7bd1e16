package web

// Notes:
// - ReplaceRegion keeps markers, replaces first pair only
// - idempotence: running the same replacement twice yields the same page
// - missing or out-of-order markers leave the page untouched

import (
	"testing"

	"github.com/alnah/go-doxcv/internal/dox"
)

// ---------------------------------------------------------------------------
// TestReplaceRegion
// ---------------------------------------------------------------------------

func TestReplaceRegion(t *testing.T) {
	t.Parallel()

	r := Region{Start: "<!-- S -->", End: "<!-- E -->"}
	doc := "before\n<!-- S -->\nold content\n<!-- E -->\nafter"

	got, ok := ReplaceRegion(doc, r, "new content")
	if !ok {
		t.Fatal("ReplaceRegion() reported missing markers")
	}
	want := "before\n<!-- S -->\nnew content\n<!-- E -->\nafter"
	if got != want {
		t.Errorf("ReplaceRegion() = %q, want %q", got, want)
	}
}

func TestReplaceRegionIdempotent(t *testing.T) {
	t.Parallel()

	r := Region{Start: "<!-- S -->", End: "<!-- E -->"}
	doc := "<!-- S -->\nold\n<!-- E -->"

	once, ok := ReplaceRegion(doc, r, "inner")
	if !ok {
		t.Fatal("first replacement failed")
	}
	twice, ok := ReplaceRegion(once, r, "inner")
	if !ok {
		t.Fatal("second replacement failed")
	}
	if once != twice {
		t.Errorf("replacement not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestReplaceRegionEdgeCases(t *testing.T) {
	t.Parallel()

	r := Region{Start: "<!-- S -->", End: "<!-- E -->"}

	tests := []struct {
		name string
		doc  string
	}{
		{"missing start", "content <!-- E -->"},
		{"missing end", "<!-- S --> content"},
		{"end before start", "<!-- E --> middle <!-- S -->"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ReplaceRegion(tt.doc, r, "x")
			if ok {
				t.Error("ReplaceRegion() reported success on a broken pair")
			}
			if got != tt.doc {
				t.Errorf("document changed: %q", got)
			}
		})
	}
}

func TestReplaceRegionFirstPairOnly(t *testing.T) {
	t.Parallel()

	r := Region{Start: "<!-- S -->", End: "<!-- E -->"}
	doc := "<!-- S -->a<!-- E --> <!-- S -->b<!-- E -->"

	got, ok := ReplaceRegion(doc, r, "x")
	if !ok {
		t.Fatal("ReplaceRegion() failed")
	}
	want := "<!-- S -->\nx\n<!-- E --> <!-- S -->b<!-- E -->"
	if got != want {
		t.Errorf("ReplaceRegion() = %q, want %q", got, want)
	}
}

func TestRegionFor(t *testing.T) {
	t.Parallel()

	if _, ok := RegionFor(dox.KeySkills); !ok {
		t.Error("RegionFor(skills) missing")
	}
	if _, ok := RegionFor("no_such_section"); ok {
		t.Error("RegionFor() found a region for an unknown key")
	}
}
