package web

import (
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

// Region is a paired start/end marker comment delimiting a replaceable
// block of the HTML page.
type Region struct {
	Start string
	End   string
}

// regions maps section keys to their marker pairs in the page.
var regions = map[string]Region{
	dox.KeyContact:    {"<!-- CONTACT_INFO_START -->", "<!-- CONTACT_INFO_END -->"},
	dox.KeySummary:    {"<!-- SUMMARY_START -->", "<!-- SUMMARY_END -->"},
	dox.KeySkills:     {"<!-- SKILLS_START -->", "<!-- SKILLS_END -->"},
	dox.KeyEducation:  {"<!-- EDUCATION_START -->", "<!-- EDUCATION_END -->"},
	dox.KeyExperience: {"<!-- WORK_EXPERIENCE_START -->", "<!-- WORK_EXPERIENCE_END -->"},
}

// RegionFor returns the marker pair for a section key.
func RegionFor(key string) (Region, bool) {
	r, ok := regions[key]
	return r, ok
}

// ReplaceRegion replaces the text between a marker pair with inner,
// keeping the markers. Only the first pair is replaced. Returns ok=false
// and the document unchanged when either marker is missing or out of
// order; callers report that as a non-fatal warning. Replacement is
// idempotent for a fixed inner.
func ReplaceRegion(doc string, r Region, inner string) (string, bool) {
	start := strings.Index(doc, r.Start)
	if start < 0 {
		return doc, false
	}
	after := start + len(r.Start)
	end := strings.Index(doc[after:], r.End)
	if end < 0 {
		return doc, false
	}
	end += after
	return doc[:start] + r.Start + "\n" + inner + "\n" + doc[end:], true
}
