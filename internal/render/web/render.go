// Package web serializes CV records into the HTML fragments of the static
// résumé page and splices them into its marker-delimited regions.
package web

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-doxcv/internal/cv"
	"github.com/alnah/go-doxcv/internal/dox"
)

// escapeInline escapes HTML entities while translating <b>/<em> markup to
// <strong>/<em>, never stripping it.
func escapeInline(s string) string {
	marked := dox.MarkEmphasis(s)
	escaped := html.EscapeString(marked)
	return dox.UnmarkEmphasis(escaped, "<strong>", "</strong>", "<em>", "</em>")
}

// Contact renders contact items as the sidebar's <li> list. Items arrive
// with the location already sorted last.
func Contact(items []cv.ContactItem) string {
	var lines []string
	for i, it := range items {
		margin := "mb-2"
		if i == len(items)-1 {
			margin = "mb-0"
		}
		switch it.Kind {
		case cv.ContactEmail:
			lines = append(lines, fmt.Sprintf(
				`<li class="%s"><i class="fas fa-envelope-square fa-fw fa-lg mr-2"></i><a class="resume-link" href="%s">%s</a></li>`,
				margin, html.EscapeString(it.URL), html.EscapeString(it.Text)))
		case cv.ContactPhone:
			lines = append(lines, fmt.Sprintf(
				`<li class="%s"><i class="fas fa-phone-square fa-fw fa-lg mr-2"></i><a class="resume-link" href="%s">%s</a></li>`,
				margin, html.EscapeString(it.URL), html.EscapeString(it.Text)))
		case cv.ContactLinkedIn:
			lines = append(lines, externalLink(margin, "fab fa-linkedin", it))
		case cv.ContactGitHub:
			lines = append(lines, externalLink(margin, "fab fa-github", it))
		case cv.ContactWebsite:
			lines = append(lines, externalLink(margin, "fas fa-external-link-alt", it))
		default:
			lines = append(lines, fmt.Sprintf(
				`<li class="%s"><i class="fas fa-map-marker-alt fa-fw fa-lg mr-2"></i>%s</li>`,
				margin, html.EscapeString(it.Text)))
		}
	}
	return strings.Join(lines, "\n")
}

func externalLink(margin, icon string, it cv.ContactItem) string {
	if it.URL == "" {
		return fmt.Sprintf(`<li class="%s"><i class="%s fa-fw fa-lg mr-2"></i>%s</li>`,
			margin, icon, html.EscapeString(it.Text))
	}
	return fmt.Sprintf(
		`<li class="%s"><i class="%s fa-fw fa-lg mr-2"></i><a class="resume-link" href="%s" target="_blank">%s</a></li>`,
		margin, icon, html.EscapeString(it.URL), html.EscapeString(it.Text))
}

// Skills renders skill blocks as item divs with badge spans. When no block
// parsed, the raw body renders as an emphasized fallback so the page never
// loses the section entirely.
func Skills(blocks []cv.SkillBlock, raw string) string {
	if len(blocks) == 0 {
		if strings.TrimSpace(raw) == "" {
			return ""
		}
		return fmt.Sprintf(`<div class="item"><em>%s</em></div>`, escapeInline(raw))
	}
	var out []string
	for _, b := range blocks {
		badges := make([]string, 0, len(b.Tags))
		for _, t := range b.Tags {
			badges = append(badges, fmt.Sprintf(`<span class="badge badge-primary mr-1 mb-1">%s</span>`, html.EscapeString(t)))
		}
		out = append(out, fmt.Sprintf(
			`<div class="item"><h4 class="item-title">%s</h4><div class="item-content">%s</div></div>`,
			html.EscapeString(b.Category), strings.Join(badges, ", ")))
	}
	return strings.Join(out, "\n")
}

// Education renders education entries as an unstyled list, one <li> per
// institution with its degrees and free-form notes.
func Education(entries []cv.EducationEntry, free *FreeTextConverter) string {
	var lis []string
	for _, e := range entries {
		var b strings.Builder
		heading := e.School
		if e.Location != "" {
			heading += ", " + e.Location
		}
		if heading != "" {
			fmt.Fprintf(&b, `<h4 class="mb-1">%s</h4>`, html.EscapeString(heading))
		}
		for _, d := range e.Degrees {
			fmt.Fprintf(&b, "\n"+`<div><strong>%s</strong> <em>%s</em></div>`,
				html.EscapeString(d.Title), html.EscapeString(d.Dates))
			if d.GPA != "" {
				fmt.Fprintf(&b, "\n"+`<div class="text-muted">GPA: %s</div>`, html.EscapeString(d.GPA))
			}
		}
		if len(e.Notes) > 0 {
			b.WriteString("\n" + free.ToHTML(strings.Join(e.Notes, "\n")))
		}
		lis = append(lis, fmt.Sprintf(`<li class="mb-3">%s</li>`, b.String()))
	}
	return `<ul class="list-unstyled resume-education-list">` + "\n" + strings.Join(lis, "\n") + "\n</ul>"
}

// Work renders work entries as item divs. An empty record list renders the
// explicit fallback marker the page shows when nothing parsed.
func Work(entries []cv.WorkEntry) string {
	if len(entries) == 0 {
		return `<div class="item mb-3"><em>No work experience parsed.</em></div>`
	}
	var divs []string
	for _, e := range entries {
		heading := e.Company
		if e.Location != "" {
			heading += ", " + e.Location
		}
		var b strings.Builder
		fmt.Fprintf(&b, `<h4 class="resume-position-title font-weight-bold mb-1">%s</h4>`, html.EscapeString(heading))
		for _, p := range e.Projects {
			title := p.Title
			if p.Dates != "" {
				title += " | " + p.Dates
			}
			if title != "" {
				fmt.Fprintf(&b, "\n"+`<div class="text-muted">%s</div>`, html.EscapeString(title))
			}
			for _, f := range p.Info {
				fmt.Fprintf(&b, "\n"+`<div><strong>%s:</strong> %s</div>`, html.EscapeString(f.Label), escapeInline(f.Text))
			}
			b.WriteString(renderGroups(p.Responsibilities))
			b.WriteString(renderGroups(p.Achievements))
		}
		divs = append(divs, fmt.Sprintf(`<div class="item mb-3">%s</div>`, b.String()))
	}
	return strings.Join(divs, "\n")
}

func renderGroups(groups []cv.BulletGroup) string {
	var b strings.Builder
	for _, g := range groups {
		if g.Label != "" {
			fmt.Fprintf(&b, "\n"+`<div class="font-weight-bold">%s:</div>`, html.EscapeString(g.Label))
		}
		if len(g.Items) == 0 {
			continue
		}
		b.WriteString("\n" + `<ul class="resume-list">`)
		for _, item := range g.Items {
			b.WriteString("\n<li>" + escapeInline(item) + "</li>")
		}
		b.WriteString("\n</ul>")
	}
	return b.String()
}
