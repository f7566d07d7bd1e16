package web

// Notes:
// - Contact: mailto/tel/external links, last item gets mb-0
// - Skills: badge spans, raw fallback when nothing parsed
// - Work: explicit fallback marker for an empty record list

import (
	"strings"
	"testing"

	"github.com/alnah/go-doxcv/internal/cv"
)

// ---------------------------------------------------------------------------
// TestContact
// ---------------------------------------------------------------------------

func TestContact(t *testing.T) {
	t.Parallel()

	items := []cv.ContactItem{
		{Kind: cv.ContactEmail, Text: "jane@example.com", URL: "mailto:jane@example.com"},
		{Kind: cv.ContactGitHub, Text: "GitHub", URL: "https://github.com/jane"},
		{Kind: cv.ContactLocation, Text: "Stuttgart, Germany"},
	}

	got := Contact(items)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("Contact() produced %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], `href="mailto:jane@example.com"`) {
		t.Errorf("email line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `target="_blank"`) || !strings.Contains(lines[1], "fab fa-github") {
		t.Errorf("github line = %q", lines[1])
	}
	if !strings.Contains(lines[2], `class="mb-0"`) {
		t.Errorf("last item should carry mb-0: %q", lines[2])
	}
	if strings.Contains(lines[0], "mb-0") {
		t.Errorf("first item should not carry mb-0: %q", lines[0])
	}
}

// ---------------------------------------------------------------------------
// TestSkills
// ---------------------------------------------------------------------------

func TestSkills(t *testing.T) {
	t.Parallel()

	blocks := cv.BuildSkills("- <b>Programming Languages</b>: C++, Python (scripting)")
	got := Skills(blocks, "")

	if !strings.Contains(got, `<h4 class="item-title">Programming Languages</h4>`) {
		t.Errorf("category heading missing:\n%s", got)
	}
	if !strings.Contains(got, `<span class="badge badge-primary mr-1 mb-1">Python (scripting)</span>`) {
		t.Errorf("parenthesized tag not kept whole:\n%s", got)
	}
}

func TestSkillsFallback(t *testing.T) {
	t.Parallel()

	got := Skills(nil, "some unparsed text")
	if !strings.Contains(got, "<em>some unparsed text</em>") {
		t.Errorf("raw fallback missing:\n%s", got)
	}
	if got := Skills(nil, "   "); got != "" {
		t.Errorf("blank raw should render nothing, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestWork / TestEducation
// ---------------------------------------------------------------------------

func TestWork(t *testing.T) {
	t.Parallel()

	entries := []cv.WorkEntry{{
		Company:  "ACME Corp",
		Location: "Berlin",
		Projects: []cv.Project{{
			Title: "Platform",
			Dates: "2020 - 2022",
			Info:  []cv.InfoField{{Label: "Customer", Text: "OEM"}},
			Responsibilities: []cv.BulletGroup{
				{Items: []string{"built <b>fast</b> things"}},
				{Label: "Tooling", Items: []string{"scripts"}},
			},
		}},
	}}

	got := Work(entries)
	if !strings.Contains(got, ">ACME Corp, Berlin</h4>") {
		t.Errorf("company heading missing:\n%s", got)
	}
	if !strings.Contains(got, `<div class="text-muted">Platform | 2020 - 2022</div>`) {
		t.Errorf("project line missing:\n%s", got)
	}
	if !strings.Contains(got, "<strong>Customer:</strong> OEM") {
		t.Errorf("info field missing:\n%s", got)
	}
	if !strings.Contains(got, "<li>built <strong>fast</strong> things</li>") {
		t.Errorf("inline markup not translated:\n%s", got)
	}
	if !strings.Contains(got, `<div class="font-weight-bold">Tooling:</div>`) {
		t.Errorf("group label missing:\n%s", got)
	}
}

func TestWorkEmpty(t *testing.T) {
	t.Parallel()

	got := Work(nil)
	if got != `<div class="item mb-3"><em>No work experience parsed.</em></div>` {
		t.Errorf("empty fallback = %q", got)
	}
}

func TestEducation(t *testing.T) {
	t.Parallel()

	free := NewFreeTextConverter()
	entries := []cv.EducationEntry{{
		School:   "University of Stuttgart",
		Location: "Stuttgart",
		Degrees:  []cv.Degree{{Title: "M.Sc.", Dates: "2012 - 2014", GPA: "1.3"}},
	}}

	got := Education(entries, free)
	if !strings.HasPrefix(got, `<ul class="list-unstyled resume-education-list">`) {
		t.Errorf("list wrapper missing:\n%s", got)
	}
	if !strings.Contains(got, `<h4 class="mb-1">University of Stuttgart, Stuttgart</h4>`) {
		t.Errorf("institution heading missing:\n%s", got)
	}
	if !strings.Contains(got, `<div class="text-muted">GPA: 1.3</div>`) {
		t.Errorf("GPA line missing:\n%s", got)
	}
}

// ---------------------------------------------------------------------------
// TestFreeTextConverter
// ---------------------------------------------------------------------------

func TestFreeTextToHTML(t *testing.T) {
	t.Parallel()

	free := NewFreeTextConverter()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "emphasis normalized",
			in:   "a <b>bold</b> and <em>italic</em> word",
			want: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name: "list gets resume class",
			in:   "- one\n- two",
			want: []string{`<ul class="resume-list">`, "<li>one</li>"},
		},
		{
			name: "rule lines dropped",
			in:   "before\n---\nafter",
			want: []string{"before", "after"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := free.ToHTML(tt.in)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToHTML(%q) missing %q in:\n%s", tt.in, w, got)
				}
			}
		})
	}
}

func TestFreeTextInlineHTML(t *testing.T) {
	t.Parallel()

	free := NewFreeTextConverter()

	got := free.InlineHTML("just a sentence")
	if got != "just a sentence" {
		t.Errorf("InlineHTML() = %q, want unwrapped text", got)
	}

	multi := free.InlineHTML("para one\n\npara two")
	if !strings.Contains(multi, "<p>") {
		t.Errorf("multi-paragraph output should keep paragraph tags: %q", multi)
	}
}
