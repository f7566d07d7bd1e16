package cv

import (
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

// BuildEducation parses the education body. Two-field header lines are told
// apart by a digit heuristic: a line whose second field contains a digit is
// a degree/date-range line, otherwise it opens a new institution entry.
// A trailing "GPA:" list item attaches to the most recently opened degree.
// Lines matching nothing are kept as free-form notes on the current entry.
func BuildEducation(body string) []EducationEntry {
	var entries []EducationEntry

	current := func() *EducationEntry {
		if len(entries) == 0 {
			entries = append(entries, EducationEntry{})
		}
		return &entries[len(entries)-1]
	}

	for _, ln := range dox.Lines(body) {
		switch ln.Kind {
		case dox.LineBlank, dox.LineRule:
			continue

		case dox.LineSubsection:
			school, location := dox.SplitFields(ln.Text)
			entries = append(entries, EducationEntry{School: school, Location: location})

		case dox.LineHeaderPair:
			if dox.ContainsDigit(ln.Field2) {
				e := current()
				e.Degrees = append(e.Degrees, Degree{Title: ln.Field1, Dates: ln.Field2})
				continue
			}
			entries = append(entries, EducationEntry{School: ln.Field1, Location: ln.Field2})

		case dox.LineBullet, dox.LineNestedBullet:
			if gpa, ok := strings.CutPrefix(ln.Text, "GPA:"); ok {
				e := current()
				if n := len(e.Degrees); n > 0 {
					e.Degrees[n-1].GPA = strings.TrimSpace(gpa)
				}
				// No open degree: the note has no attachment point and is
				// dropped.
				continue
			}
			current().Notes = append(current().Notes, ln.Text)

		case dox.LineText:
			current().Notes = append(current().Notes, ln.Text)
		}
	}

	// Drop a leading placeholder entry created only to hold stray notes.
	if len(entries) > 0 && entries[0].School == "" && len(entries[0].Degrees) == 0 && len(entries[0].Notes) == 0 {
		entries = entries[1:]
	}
	return entries
}
