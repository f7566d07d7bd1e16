package dox

import (
	"regexp"
	"strings"
)

// Emphasis placeholders use Unicode Private Use Area characters so that a
// renderer can escape target-specific special characters without mangling
// the markup tags themselves. MarkEmphasis swaps tags for placeholders, the
// renderer escapes the text, and UnmarkEmphasis swaps in the target syntax.
const (
	BoldStart   = "\uE000"
	BoldEnd     = "\uE001"
	ItalicStart = "\uE002"
	ItalicEnd   = "\uE003"
)

var (
	fieldPair = regexp.MustCompile(`<b>([^<]+)</b>\s*(?:@fill|\|)\s*<em>([^<]+)</em>`)
	parenURL  = regexp.MustCompile(`\((https?://[^)\s]+)\)`)
	linkToken = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	boldSpan  = regexp.MustCompile(`<b>([^<]*)</b>`)
	emSpan    = regexp.MustCompile(`<em>([^<]*)</em>`)
	digit     = regexp.MustCompile(`\d`)

	emphasisMarker = strings.NewReplacer(
		"<b>", BoldStart, "</b>", BoldEnd,
		"<em>", ItalicStart, "</em>", ItalicEnd,
	)
)

// MarkEmphasis replaces <b>/<em> tags with placeholder runes.
func MarkEmphasis(s string) string {
	return emphasisMarker.Replace(s)
}

// UnmarkEmphasis replaces placeholder runes with the target's emphasis
// wrappers, completing the translation started by MarkEmphasis.
func UnmarkEmphasis(s, boldOpen, boldClose, italicOpen, italicClose string) string {
	r := strings.NewReplacer(
		BoldStart, boldOpen, BoldEnd, boldClose,
		ItalicStart, italicOpen, ItalicEnd, italicClose,
	)
	return r.Replace(s)
}

// StripTags removes <b>/<em> tags, keeping the span text.
func StripTags(s string) string {
	s = boldSpan.ReplaceAllString(s, "$1")
	return emSpan.ReplaceAllString(s, "$1")
}

// FieldPair matches a two-field header line of the form
// "<b>F1</b> @fill <em>F2</em>". The legacy "|" separator is accepted for
// older documents. Returns ok=false when the line has another shape.
func FieldPair(line string) (f1, f2 string, ok bool) {
	m := fieldPair.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// SplitFields splits a header line on the @fill token, or on the legacy "|"
// separator when no @fill is present. The second return is "" when the line
// has a single field.
func SplitFields(line string) (left, right string) {
	if i := strings.Index(line, "@fill"); i != -1 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len("@fill"):])
	}
	if i := strings.Index(line, "|"); i != -1 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line), ""
}

// ContainsDigit reports whether s contains a decimal digit. The education
// and experience builders use it to tell a degree/date header from an
// institution/location header.
func ContainsDigit(s string) bool {
	return digit.MatchString(s)
}

// ExtractURL pulls a target URL out of a contact token, from either a
// "[Label](url)" link or a parenthesized "(https://...)" URL. A URL without
// a scheme gets "https://" prepended. Returns "" when the token carries no
// URL.
func ExtractURL(token string) string {
	var url string
	if m := linkToken.FindStringSubmatch(token); m != nil {
		url = m[2]
	} else if m := parenURL.FindStringSubmatch(token); m != nil {
		url = m[1]
	}
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// LinkLabel returns the label of a "[Label](url)" token, or "" when the
// token is not a link.
func LinkLabel(token string) string {
	if m := linkToken.FindStringSubmatch(token); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
