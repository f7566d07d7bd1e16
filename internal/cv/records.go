// Package cv turns the sections of a DOX CV document into flat, immutable
// records. Builders are pure functions over the section bodies: lines that
// do not match the expected shape are kept as best-effort verbatim text or
// dropped, never reported as errors.
package cv

// ContactKind classifies one token of the contact header line.
type ContactKind int

const (
	ContactEmail ContactKind = iota
	ContactPhone
	ContactLinkedIn
	ContactGitHub
	ContactWebsite
	ContactLocation
)

// ContactItem is one classified contact token. URL is set for link kinds
// and for email/phone targets derived by the renderers.
type ContactItem struct {
	Kind ContactKind
	Text string
	URL  string
}

// SkillBlock is one skill category with its ordered tags.
type SkillBlock struct {
	Category string
	Tags     []string
}

// Language is one "name : level" entry. Raw is set instead of Name/Level
// when the line did not match the pattern and is rendered verbatim.
type Language struct {
	Name  string
	Level string
	Raw   string
}

// Degree is one degree line under an institution, with an optional GPA note
// attached from a trailing list item.
type Degree struct {
	Title string
	Dates string
	GPA   string
}

// EducationEntry is one institution with its degrees. Notes holds free-form
// lines that did not match a known shape.
type EducationEntry struct {
	School   string
	Location string
	Degrees  []Degree
	Notes    []string
}

// BulletGroup is an ordered run of bullet items, optionally labeled by a
// category bullet that opened the group.
type BulletGroup struct {
	Label string
	Items []string
}

// InfoField is one "<b>Label:</b> value" line of a project header, such as
// Customer or Product.
type InfoField struct {
	Label string
	Text  string
}

// Project is one position or engagement under a company.
type Project struct {
	Title            string
	Dates            string
	Info             []InfoField
	Responsibilities []BulletGroup
	Achievements     []BulletGroup
}

// WorkEntry is one company with its projects in source order.
type WorkEntry struct {
	Company  string
	Location string
	Projects []Project
}

// Resume is the full set of records recovered from one source document.
type Resume struct {
	Name           string
	Contact        []ContactItem
	Summary        string
	Skills         []SkillBlock
	Certifications []string
	Languages      []Language
	Education      []EducationEntry
	Experience     []WorkEntry
}
