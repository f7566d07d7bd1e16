package latex

import (
	"strings"

	"github.com/alnah/go-doxcv/internal/cv"
)

// Fragments holds the rendered replacement text for each template
// placeholder. Empty fields replace their placeholder with nothing, which
// is how missing source sections disappear from the output.
type Fragments struct {
	Name           string
	Contact        string
	Summary        string
	Skills         string
	Certifications string
	Languages      string
	Experience     string
	Education      string
}

// Render produces all template fragments from a parsed resume.
func Render(r *cv.Resume) Fragments {
	return Fragments{
		Name:           Escape(r.Name),
		Contact:        Contact(r.Contact),
		Summary:        Summary(r.Summary),
		Skills:         Skills(r.Skills),
		Certifications: Certifications(r.Certifications),
		Languages:      Languages(r.Languages),
		Experience:     Experience(r.Experience),
		Education:      Education(r.Education),
	}
}

// Fill replaces the @@NAME@@-style placeholders of a template verbatim with
// the rendered fragments.
func Fill(template string, f Fragments) string {
	return strings.NewReplacer(
		"@@NAME@@", f.Name,
		"@@CONTACT@@", f.Contact,
		"@@SUMMARY@@", f.Summary,
		"@@SKILLS@@", f.Skills,
		"@@CERTIFICATIONS@@", f.Certifications,
		"@@LANGUAGES@@", f.Languages,
		"@@EXPERIENCE@@", f.Experience,
		"@@EDUCATION@@", f.Education,
	).Replace(template)
}
