package cv

import (
	"github.com/alnah/go-doxcv/internal/dox"
)

// expState is the current position of the experience scanner in the section
// grammar. Transitions are driven only by the kind of the current line.
type expState int

const (
	stBeforeCompany expState = iota
	stCompanyHeader
	stInProject
	stResponsibilities
	stAchievements
)

// BuildExperience parses the work-experience body with an explicit state
// machine over classified lines.
//
// Transition table (state x line kind -> action, next state):
//
//	any            x Subsection      -> open company            CompanyHeader
//	any            x HeaderPair      -> open company (no digit  CompanyHeader
//	                                    in F2) or open project  InProject
//	                                    (digit in F2)
//	any            x Project         -> open project            InProject
//	>=InProject    x SectionLabel    -> select bullet section   Responsibilities/
//	                                                            Achievements
//	>=InProject    x InfoField       -> attach project info     (keep)
//	>=Responsib.   x CategoryBullet  -> open labeled group      (keep)
//	>=Responsib.   x Bullet/Nested   -> append to open group    (keep)
//	any            x Rule/Blank/Text -> discard                 (keep)
//
// Bullets that arrive before any project or section label attach
// best-effort to an implicit project and the responsibilities section, so
// loosely formatted input degrades instead of disappearing.
func BuildExperience(body string) []WorkEntry {
	var (
		entries []WorkEntry
		state   = stBeforeCompany
	)

	company := func() *WorkEntry {
		if len(entries) == 0 {
			entries = append(entries, WorkEntry{})
		}
		return &entries[len(entries)-1]
	}
	project := func() *Project {
		c := company()
		if len(c.Projects) == 0 {
			c.Projects = append(c.Projects, Project{})
			if state < stInProject {
				state = stInProject
			}
		}
		return &c.Projects[len(c.Projects)-1]
	}
	section := func() *[]BulletGroup {
		p := project()
		if state == stAchievements {
			return &p.Achievements
		}
		return &p.Responsibilities
	}
	appendItem := func(text string) {
		s := section()
		if len(*s) == 0 {
			*s = append(*s, BulletGroup{})
		}
		g := &(*s)[len(*s)-1]
		g.Items = append(g.Items, text)
	}

	for _, ln := range dox.Lines(body) {
		switch ln.Kind {
		case dox.LineBlank, dox.LineRule, dox.LineText:
			continue

		case dox.LineSubsection:
			name, location := dox.SplitFields(ln.Text)
			entries = append(entries, WorkEntry{Company: name, Location: location})
			state = stCompanyHeader

		case dox.LineHeaderPair:
			if dox.ContainsDigit(ln.Field2) {
				// Position title and date range: a new project under the
				// current company.
				c := company()
				c.Projects = append(c.Projects, Project{Title: ln.Field1, Dates: ln.Field2})
				state = stInProject
				continue
			}
			entries = append(entries, WorkEntry{Company: ln.Field1, Location: ln.Field2})
			state = stCompanyHeader

		case dox.LineProject:
			title, dates := dox.SplitFields(ln.Text)
			c := company()
			c.Projects = append(c.Projects, Project{Title: title, Dates: dates})
			state = stInProject

		case dox.LineSectionLabel:
			// Force project context, then select the bullet section.
			project()
			if ln.Label == "Achievements" {
				state = stAchievements
			} else {
				state = stResponsibilities
			}

		case dox.LineInfoField:
			p := project()
			p.Info = append(p.Info, InfoField{Label: ln.Label, Text: ln.Text})

		case dox.LineCategoryBullet:
			if state < stResponsibilities {
				state = stResponsibilities
			}
			s := section()
			g := BulletGroup{Label: ln.Label}
			if ln.Text != "" {
				g.Items = append(g.Items, ln.Text)
			}
			*s = append(*s, g)

		case dox.LineBullet, dox.LineNestedBullet:
			if state < stResponsibilities {
				state = stResponsibilities
			}
			appendItem(ln.Text)
		}
	}

	// Drop a placeholder company that only existed to catch stray bullets
	// when it stayed empty.
	if len(entries) > 0 && entries[0].Company == "" && len(entries[0].Projects) == 0 {
		entries = entries[1:]
	}
	return entries
}
