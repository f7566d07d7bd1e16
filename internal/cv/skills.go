package cv

import (
	"regexp"
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

var (
	labeledLine  = regexp.MustCompile(`^<b>([^<]+)</b>:\s*(.*)$`)
	internalNote = regexp.MustCompile(`\s*\([^)]*Internal[^)]*\)`)
)

// BuildSkills parses "- <b>Category</b>: a, b, c" list lines into skill
// blocks. Values split on commas outside parentheses, so a parenthesized
// clarification such as "Python (scripting, tooling)" stays one tag.
// Non-matching lines are dropped.
func BuildSkills(body string) []SkillBlock {
	var blocks []SkillBlock
	for _, item := range listItems(body) {
		m := labeledLine.FindStringSubmatch(item)
		if m == nil {
			continue
		}
		blocks = append(blocks, SkillBlock{
			Category: strings.TrimSpace(m[1]),
			Tags:     SplitValues(m[2]),
		})
	}
	return blocks
}

// BuildCertifications passes certification list lines through, removing an
// "(... Internal ...)" parenthetical when present.
func BuildCertifications(body string) []string {
	var items []string
	for _, item := range listItems(body) {
		items = append(items, strings.TrimSpace(internalNote.ReplaceAllString(item, "")))
	}
	return items
}

// BuildLanguages parses "- <b>Name</b>: Level" list lines. A line that does
// not match keeps its verbatim text in Raw.
func BuildLanguages(body string) []Language {
	var items []Language
	for _, item := range listItems(body) {
		if m := labeledLine.FindStringSubmatch(item); m != nil {
			items = append(items, Language{Name: strings.TrimSpace(m[1]), Level: strings.TrimSpace(m[2])})
			continue
		}
		items = append(items, Language{Raw: item})
	}
	return items
}

// SplitValues splits a comma-separated value list, ignoring commas inside
// parentheses. Empty values are dropped, surrounding whitespace trimmed.
func SplitValues(s string) []string {
	var out []string
	depth, start := 0, 0
	flush := func(end int) {
		if v := strings.TrimSpace(s[start:end]); v != "" {
			out = append(out, v)
		}
	}
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return out
}

// listItems returns the item text of the "- " list lines of a section body,
// skipping "---" separator lines.
func listItems(body string) []string {
	var items []string
	for _, ln := range dox.Lines(body) {
		switch ln.Kind {
		case dox.LineBullet, dox.LineNestedBullet:
			items = append(items, ln.Text)
		case dox.LineCategoryBullet:
			// A labeled list line: reassemble the "<b>Label</b>: text" shape
			// so per-section parsing sees the original item text.
			items = append(items, "<b>"+ln.Label+"</b>: "+ln.Text)
		}
	}
	return items
}
