package dox

// Notes:
// - Sections: section boundary detection, comment terminator, duplicates
// - Name / ContactLine: @mainpage header extraction
// - StripCommands: residual @word cleanup for free-form bodies

import (
	"testing"
)

const sampleDoc = `/**
@mainpage Jane Doe

jane.doe@example.com | (+49) 151 000000 | [LinkedIn](https://linkedin.com/in/janedoe) | Stuttgart, Germany

@section summary Professional Summary

Embedded engineer with a decade of experience.

@section skills Skills

- <b>Programming Languages</b>: C++, Python (scripting)

@section education Education

<b>University of Stuttgart</b> @fill <em>Stuttgart</em>
<b>M.Sc. Computer Science</b> @fill <em>2012 - 2014</em>
*/`

// ---------------------------------------------------------------------------
// TestSections - Section Extraction
// ---------------------------------------------------------------------------

func TestSections(t *testing.T) {
	t.Parallel()

	sections := Sections(sampleDoc)

	if got := len(sections); got != 3 {
		t.Fatalf("Sections() returned %d sections, want 3", got)
	}
	if got := sections[KeySummary]; got != "Embedded engineer with a decade of experience." {
		t.Errorf("summary = %q", got)
	}
	if got := sections[KeySkills]; got != "- <b>Programming Languages</b>: C++, Python (scripting)" {
		t.Errorf("skills = %q", got)
	}
	if _, ok := sections[KeyExperience]; ok {
		t.Error("work_experience should be absent")
	}
}

func TestSectionsEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		key  string
		want string
	}{
		{
			name: "empty document",
			in:   "",
			key:  KeySummary,
			want: "",
		},
		{
			name: "no sections",
			in:   "just some text",
			key:  KeySummary,
			want: "",
		},
		{
			name: "body stops at comment terminator",
			in:   "@section summary Title\nbody text\n*/ trailing",
			key:  KeySummary,
			want: "body text",
		},
		{
			name: "duplicate key keeps last",
			in:   "@section summary A\nfirst\n@section summary B\nsecond\n*/",
			key:  KeySummary,
			want: "second",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sections(tt.in)[tt.key]
			if got != tt.want {
				t.Errorf("Sections()[%q] = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestName / TestContactLine - Mainpage Header
// ---------------------------------------------------------------------------

func TestName(t *testing.T) {
	t.Parallel()

	if got := Name(sampleDoc); got != "Jane Doe" {
		t.Errorf("Name() = %q, want %q", got, "Jane Doe")
	}
	if got := Name("no mainpage here"); got != "Name" {
		t.Errorf("Name() fallback = %q, want %q", got, "Name")
	}
}

func TestContactLine(t *testing.T) {
	t.Parallel()

	got := ContactLine(sampleDoc)
	want := "jane.doe@example.com | (+49) 151 000000 | [LinkedIn](https://linkedin.com/in/janedoe) | Stuttgart, Germany"
	if got != want {
		t.Errorf("ContactLine() = %q, want %q", got, want)
	}

	if got := ContactLine("no mainpage"); got != "" {
		t.Errorf("ContactLine() without mainpage = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestStripCommands - Free-Form Cleanup
// ---------------------------------------------------------------------------

func TestStripCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"removes command", "@note hello", "hello"},
		{"removes fill token", "left @fill right", "left right"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripCommands(tt.in); got != tt.want {
				t.Errorf("StripCommands(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
