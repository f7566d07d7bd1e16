package latex

import (
	"fmt"
	"strings"

	"github.com/alnah/go-doxcv/internal/cv"
)

// Font Awesome icon names used by the sidebar template.
const (
	iconEmail    = "envelope"
	iconPhone    = "phone"
	iconLinkedIn = "linkedin"
	iconGitHub   = "github"
	iconLink     = "external-link-alt"
	iconLocation = "map-marker-alt"
)

// skillIcons maps known skill category labels to sidebar icons. Unknown
// categories fall back to a plain check mark.
var skillIcons = map[string]string{
	"Programming Languages": "code",
	"Automotive Standards":  "car",
	"Tools & Platforms":     "tools",
	"DevOps":                "server",
	"Methodologies":         "project-diagram",
	"Soft Skills":           "users",
}

// Contact renders contact items as \contactitem lines. The builder already
// sorted the location last.
func Contact(items []cv.ContactItem) string {
	var lines []string
	for _, it := range items {
		switch it.Kind {
		case cv.ContactEmail:
			lines = append(lines, fmt.Sprintf(`\contactitem{%s}{%s}`, iconEmail, Escape(it.Text)))
		case cv.ContactPhone:
			lines = append(lines, fmt.Sprintf(`\contactitem{%s}{%s}`, iconPhone, Escape(it.Text)))
		case cv.ContactLinkedIn:
			lines = append(lines, linkItem(iconLinkedIn, it))
		case cv.ContactGitHub:
			lines = append(lines, linkItem(iconGitHub, it))
		case cv.ContactWebsite:
			lines = append(lines, linkItem(iconLink, it))
		default:
			lines = append(lines, fmt.Sprintf(`\contactitem{%s}{%s}`, iconLocation, Escape(it.Text)))
		}
	}
	return strings.Join(lines, "\n")
}

func linkItem(icon string, it cv.ContactItem) string {
	if it.URL == "" {
		return fmt.Sprintf(`\contactitem{%s}{%s}`, icon, Escape(it.Text))
	}
	return fmt.Sprintf(`\contactitem{%s}{\href{%s}{%s}}`, icon, it.URL, Escape(it.Text))
}

// Summary renders the summary body as escaped running text.
func Summary(text string) string {
	return escapeInline(text)
}

// Skills renders skill blocks as \skillcategory headings followed by
// \skilltag runs.
func Skills(blocks []cv.SkillBlock) string {
	var out []string
	for _, b := range blocks {
		icon, ok := skillIcons[b.Category]
		if !ok {
			icon = "check"
		}
		tags := make([]string, 0, len(b.Tags))
		for _, t := range b.Tags {
			tags = append(tags, fmt.Sprintf(`\skilltag{%s}`, Escape(t)))
		}
		block := fmt.Sprintf("\\skillcategory{%s}{%s}\n%s\n\\vspace{0.4em}\n", icon, Escape(b.Category), strings.Join(tags, " "))
		out = append(out, block)
	}
	return strings.Join(out, "\n")
}

// Certifications renders certification lines in the sidebar's small
// icon-and-text style.
func Certifications(items []string) string {
	var lines []string
	for _, it := range items {
		lines = append(lines, fmt.Sprintf(
			`\textcolor{accentcolor}{\faIcon{certificate}} \textcolor{textlight}{\small %s}\\[0.2em]`,
			escapeInline(it)))
	}
	return strings.Join(lines, "\n")
}

// Languages renders language entries; fallback entries render their
// verbatim text without the name/level split.
func Languages(items []cv.Language) string {
	var lines []string
	for _, it := range items {
		if it.Raw != "" {
			lines = append(lines, fmt.Sprintf(
				`\textcolor{accentcolor}{\faIcon{language}} \textcolor{textlight}{\small %s}\\[0.2em]`,
				escapeInline(it.Raw)))
			continue
		}
		lines = append(lines, fmt.Sprintf(
			`\textcolor{accentcolor}{\faIcon{language}} \textbf{\textcolor{textlight}{%s}} \textcolor{textlight}{\small %s}\\[0.2em]`,
			Escape(it.Name), Escape(it.Level)))
	}
	return strings.Join(lines, "\n")
}

// Education renders one \educationentry per degree; the institution repeats
// for every degree it holds.
func Education(entries []cv.EducationEntry) string {
	var out []string
	for _, e := range entries {
		school := e.School
		if e.Location != "" {
			school += ", " + e.Location
		}
		for _, d := range e.Degrees {
			gpa := ""
			if d.GPA != "" {
				gpa = "GPA: " + d.GPA
			}
			out = append(out, fmt.Sprintf(`\educationentry{%s}{%s}{%s}{%s}`,
				Escape(school), Escape(d.Title), Escape(d.Dates), Escape(gpa)))
		}
	}
	return strings.Join(out, "\n\n")
}

// Experience renders one \experienceentry per project. The company name
// appears only on its first project; follow-up projects leave the first
// argument empty so the template stacks them under one heading.
func Experience(entries []cv.WorkEntry) string {
	var out []string
	for _, e := range entries {
		company := e.Company
		if e.Location != "" {
			company += ", " + e.Location
		}
		for i, p := range e.Projects {
			heading := ""
			if i == 0 {
				heading = Escape(company)
			}
			out = append(out, fmt.Sprintf("\\experienceentry{%s}{%s}{%s}{\n%s\n}",
				heading, Escape(p.Title), Escape(p.Dates), projectBody(p)))
		}
	}
	return strings.Join(out, "\n\n")
}

// projectBody renders a project's info lines and bullet groups.
func projectBody(p cv.Project) string {
	var parts []string
	for _, f := range p.Info {
		parts = append(parts, fmt.Sprintf(`\textbf{%s:} %s\\`, Escape(f.Label), escapeInline(f.Text)))
	}
	parts = append(parts, bulletGroups(p.Responsibilities)...)
	parts = append(parts, bulletGroups(p.Achievements)...)
	return strings.Join(parts, "\n")
}

func bulletGroups(groups []cv.BulletGroup) []string {
	var parts []string
	for _, g := range groups {
		if g.Label != "" {
			parts = append(parts, fmt.Sprintf(`\textbf{%s:}\\`, Escape(g.Label)))
		}
		if len(g.Items) == 0 {
			continue
		}
		parts = append(parts, `\begin{itemize}`)
		for _, item := range g.Items {
			parts = append(parts, `\item `+escapeInline(item))
		}
		parts = append(parts, `\end{itemize}`)
	}
	return parts
}
