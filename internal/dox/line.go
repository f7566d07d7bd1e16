package dox

import (
	"regexp"
	"strings"
)

// LineKind tags one source line with its role in the section grammar.
// Classification is an ordered cascade: the first shape that matches wins,
// so the order of the cases in Classify is part of the grammar.
type LineKind int

const (
	LineBlank          LineKind = iota
	LineRule                    // "---" visual separator, discarded
	LineSubsection              // @subsection heading
	LineProject                 // @subsubsection heading (project delimiter)
	LineHeaderPair              // <b>F1</b> @fill <em>F2</em>
	LineSectionLabel            // <b>Responsibilities:</b> or <b>Achievements:</b>
	LineInfoField               // <b>Label:</b> value (Customer, Product, ...)
	LineCategoryBullet          // - <b>Label</b>: optional trailing text
	LineNestedBullet            // two-space indented "- " item
	LineBullet                  // "- " item
	LineText                    // anything else, best-effort verbatim
)

var (
	ruleLine       = regexp.MustCompile(`^-{3,}$`)
	sectionLabel   = regexp.MustCompile(`^<b>(Responsibilities|Achievements):</b>\s*$`)
	infoField      = regexp.MustCompile(`^<b>([^<:]+):</b>\s*(.*)$`)
	categoryBullet = regexp.MustCompile(`^<b>([^<]+?)(?::</b>|</b>:)\s*(.*)$`)
)

// Line is one classified source line. Which fields are set depends on Kind:
// HeaderPair fills Field1/Field2, label-carrying kinds fill Label and Text,
// bullets fill Text.
type Line struct {
	Kind   LineKind
	Raw    string
	Field1 string
	Field2 string
	Label  string
	Text   string
}

// Classify maps a raw source line to its Line record. The cascade order
// follows the section grammar: headings before header pairs, header pairs
// before labels, labels before bullets, nested bullets detected by the
// two-space indent of the raw line.
func Classify(raw string) Line {
	stripped := strings.TrimSpace(raw)

	switch {
	case stripped == "":
		return Line{Kind: LineBlank, Raw: raw}
	case ruleLine.MatchString(stripped):
		return Line{Kind: LineRule, Raw: raw}
	}

	if m := subsectionLine.FindStringSubmatch(stripped); m != nil {
		return Line{Kind: LineSubsection, Raw: raw, Text: strings.TrimSpace(m[1])}
	}
	if m := subsubsectLine.FindStringSubmatch(stripped); m != nil {
		return Line{Kind: LineProject, Raw: raw, Text: strings.TrimSpace(m[1])}
	}

	if f1, f2, ok := FieldPair(stripped); ok {
		return Line{Kind: LineHeaderPair, Raw: raw, Field1: f1, Field2: f2}
	}

	if m := sectionLabel.FindStringSubmatch(stripped); m != nil {
		return Line{Kind: LineSectionLabel, Raw: raw, Label: m[1]}
	}
	if m := infoField.FindStringSubmatch(stripped); m != nil {
		return Line{Kind: LineInfoField, Raw: raw, Label: strings.TrimSpace(m[1]), Text: strings.TrimSpace(m[2])}
	}

	if item, nested, ok := bulletText(raw); ok {
		if m := categoryBullet.FindStringSubmatch(item); m != nil && !nested {
			return Line{Kind: LineCategoryBullet, Raw: raw, Label: strings.TrimSpace(m[1]), Text: strings.TrimSpace(m[2])}
		}
		kind := LineBullet
		if nested {
			kind = LineNestedBullet
		}
		return Line{Kind: kind, Raw: raw, Text: item}
	}

	return Line{Kind: LineText, Raw: raw, Text: stripped}
}

// bulletText extracts the item text of a "- " list line. Nested items are
// indented by at least two spaces in the raw line.
func bulletText(raw string) (text string, nested bool, ok bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	if !strings.HasPrefix(trimmed, "- ") {
		return "", false, false
	}
	indent := len(raw) - len(trimmed)
	return strings.TrimSpace(trimmed[2:]), indent >= 2, true
}

// Lines classifies every line of a section body.
func Lines(body string) []Line {
	raw := strings.Split(body, "\n")
	out := make([]Line, 0, len(raw))
	for _, r := range raw {
		out = append(out, Classify(r))
	}
	return out
}
