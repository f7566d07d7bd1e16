package cv

// Notes:
// - classification priority: email, linkedin, github, link, phone, location
// - location items sort last regardless of source position
// - builder never fails, unknown tokens degrade to location rendering

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildContact - Token Classification
// ---------------------------------------------------------------------------

func TestBuildContact(t *testing.T) {
	t.Parallel()

	line := "<b>Jane Doe</b> jane@example.com | (+49) 151 2345678 | [LinkedIn](https://linkedin.com/in/jane) | [GitHub](https://github.com/jane) | Stuttgart, Germany"

	items := BuildContact(line)
	if len(items) != 5 {
		t.Fatalf("BuildContact() returned %d items, want 5", len(items))
	}

	wantKinds := []ContactKind{ContactEmail, ContactPhone, ContactLinkedIn, ContactGitHub, ContactLocation}
	for i, k := range wantKinds {
		if items[i].Kind != k {
			t.Errorf("items[%d].Kind = %v, want %v", i, items[i].Kind, k)
		}
	}

	if items[0].URL != "mailto:jane@example.com" {
		t.Errorf("email URL = %q", items[0].URL)
	}
	if items[1].URL != "tel:+491512345678" {
		t.Errorf("phone URL = %q", items[1].URL)
	}
	if items[2].URL != "https://linkedin.com/in/jane" {
		t.Errorf("linkedin URL = %q", items[2].URL)
	}
}

func TestBuildContactLocationLast(t *testing.T) {
	t.Parallel()

	// Location first in the source still renders last.
	items := BuildContact("Stuttgart, Germany | jane@example.com | (+49) 151 0000")
	if len(items) != 3 {
		t.Fatalf("BuildContact() returned %d items, want 3", len(items))
	}
	if items[len(items)-1].Kind != ContactLocation {
		t.Errorf("last item kind = %v, want ContactLocation", items[len(items)-1].Kind)
	}
	if items[0].Kind != ContactEmail || items[1].Kind != ContactPhone {
		t.Errorf("non-location items reordered: %v, %v", items[0].Kind, items[1].Kind)
	}
}

func TestBuildContactEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty line", "", 0},
		{"only separators", " | | ", 0},
		{"single token", "jane@example.com", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BuildContact(tt.in); len(got) != tt.want {
				t.Errorf("BuildContact(%q) returned %d items, want %d", tt.in, len(got), tt.want)
			}
		})
	}
}

func TestClassifyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ContactKind
	}{
		{"email", "jane@example.com", ContactEmail},
		{"linkedin without at sign", "[LinkedIn](linkedin.com/in/jane)", ContactLinkedIn},
		{"linkedin beats email rule", "linkedin.com/in/jane@work", ContactLinkedIn},
		{"github", "[GitHub](https://github.com/jane)", ContactGitHub},
		{"generic link", "[Portfolio](https://jane.dev)", ContactWebsite},
		{"phone", "(+49) 151 2345678", ContactPhone},
		{"location fallback", "Stuttgart, Germany", ContactLocation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyToken(tt.in); got.Kind != tt.want {
				t.Errorf("classifyToken(%q).Kind = %v, want %v", tt.in, got.Kind, tt.want)
			}
		})
	}
}
