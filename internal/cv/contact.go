package cv

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

var (
	leadingName = regexp.MustCompile(`^<b>[^<]+</b>\s*`)
	phoneToken  = regexp.MustCompile(`\(\+?\d`)
)

// BuildContact classifies the pipe-separated tokens of a contact header
// line. Classification runs in a fixed priority: email, LinkedIn, GitHub,
// generic link, phone, location. An unclassified token degrades to location
// rendering. Regardless of source order, location items sort last.
func BuildContact(line string) []ContactItem {
	line = strings.TrimSpace(leadingName.ReplaceAllString(strings.TrimSpace(line), ""))

	var items []ContactItem
	for _, raw := range strings.Split(line, "|") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		items = append(items, classifyToken(token))
	}

	// Stable sort: sources may list the location anywhere, renderers always
	// place it last.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Kind != ContactLocation && items[j].Kind == ContactLocation
	})
	return items
}

func classifyToken(token string) ContactItem {
	lower := strings.ToLower(token)
	switch {
	case strings.Contains(token, "@") && !strings.Contains(lower, "linkedin") && !strings.Contains(lower, "github"):
		return ContactItem{Kind: ContactEmail, Text: token, URL: "mailto:" + token}
	case strings.Contains(lower, "linkedin"):
		return ContactItem{Kind: ContactLinkedIn, Text: "LinkedIn", URL: dox.ExtractURL(token)}
	case strings.Contains(lower, "github"):
		return ContactItem{Kind: ContactGitHub, Text: "GitHub", URL: dox.ExtractURL(token)}
	case dox.LinkLabel(token) != "":
		return ContactItem{Kind: ContactWebsite, Text: dox.LinkLabel(token), URL: dox.ExtractURL(token)}
	case phoneToken.MatchString(token):
		return ContactItem{Kind: ContactPhone, Text: token, URL: "tel:" + phoneDigits(token)}
	default:
		return ContactItem{Kind: ContactLocation, Text: token}
	}
}

// phoneDigits keeps only digits and "+" for a tel: target.
func phoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
