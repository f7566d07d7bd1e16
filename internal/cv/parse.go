package cv

import (
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

// ParseResume runs every section builder over a source document. Missing
// sections leave their record slices empty; callers render nothing for
// them.
func ParseResume(source string) *Resume {
	sections := dox.Sections(source)

	contactLine := dox.ContactLine(source)
	if contactLine == "" {
		contactLine = joinedContactSection(sections[dox.KeyContact])
	}

	return &Resume{
		Name:           dox.Name(source),
		Contact:        BuildContact(contactLine),
		Summary:        dox.StripCommands(sections[dox.KeySummary]),
		Skills:         BuildSkills(sections[dox.KeySkills]),
		Certifications: BuildCertifications(sections[dox.KeyCertifications]),
		Languages:      BuildLanguages(sections[dox.KeyLanguages]),
		Education:      BuildEducation(sections[dox.KeyEducation]),
		Experience:     BuildExperience(sections[dox.KeyExperience]),
	}
}

// joinedContactSection collapses a contact_info section body to the single
// pipe-separated line the contact builder expects.
func joinedContactSection(body string) string {
	var parts []string
	for _, ln := range dox.Lines(body) {
		if ln.Kind == dox.LineBlank || ln.Kind == dox.LineRule {
			continue
		}
		parts = append(parts, strings.TrimSpace(ln.Raw))
	}
	return strings.Join(parts, " ")
}
