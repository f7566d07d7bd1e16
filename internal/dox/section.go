// Package dox parses the Doxygen-flavored CV source format: the @mainpage
// header, @section blocks, inline <b>/<em> markup, and the line shapes used
// inside the education and work-experience sections.
package dox

import (
	"regexp"
	"strings"
)

// Section keys recognized in a CV source document.
const (
	KeyContact        = "contact_info"
	KeySummary        = "summary"
	KeySkills         = "skills"
	KeyCertifications = "certifications"
	KeyLanguages      = "languages"
	KeyEducation      = "education"
	KeyExperience     = "work_experience"
)

var (
	sectionHeader  = regexp.MustCompile(`@section\s+(\w+)[^\n]*\n`)
	mainpageLine   = regexp.MustCompile(`@mainpage[ \t]+([^\n]+)`)
	doxygenCommand = regexp.MustCompile(`@\w+\s*`)
	subsectionLine = regexp.MustCompile(`^@subsection\s+\w+\s+(.*)$`)
	subsubsectLine = regexp.MustCompile(`^@subsubsection\s+\w+\s+(.*)$`)
)

// Sections splits the document into named section bodies. A body runs from
// the section header line to the next @section header or the closing */ of
// the comment block. Duplicate keys keep the last occurrence. A missing
// section is simply absent from the map; callers render nothing for it.
func Sections(text string) map[string]string {
	headers := sectionHeader.FindAllStringSubmatchIndex(text, -1)
	sections := make(map[string]string, len(headers))
	for i, m := range headers {
		key := text[m[2]:m[3]]
		start := m[1]
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		body := text[start:end]
		if idx := strings.Index(body, "*/"); idx != -1 {
			body = body[:idx]
		}
		sections[key] = strings.TrimSpace(body)
	}
	return sections
}

// Name returns the document title from the @mainpage line, or a neutral
// placeholder when the line is absent.
func Name(text string) string {
	if m := mainpageLine.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Name"
}

// ContactLine returns the first non-empty line after the @mainpage line,
// which by convention holds the pipe-separated contact tokens. Returns ""
// when no such line exists.
func ContactLine(text string) string {
	loc := mainpageLine.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	for _, line := range strings.Split(rest, "\n") {
		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "@") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		return trimmed
	}
	return ""
}

// StripCommands removes residual @word markers from free-form text, such as
// the summary body. It is not applied to contact tokens, where "@" is part
// of an email address.
func StripCommands(text string) string {
	return strings.TrimSpace(doxygenCommand.ReplaceAllString(text, ""))
}
