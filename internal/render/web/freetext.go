package web

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	boldTag   = regexp.MustCompile(`<b>([^<]*)</b>`)
	italicTag = regexp.MustCompile(`<em>([^<]*)</em>`)
	ruleOnly  = regexp.MustCompile(`(?m)^-{3,}\s*$`)
	paragraph = regexp.MustCompile(`(?s)^<p>(.*)</p>\s*$`)
)

// FreeTextConverter renders markdown-like free-form bodies (summary text,
// unstructured education notes) to HTML. The DOX inline tags are normalized
// to markdown emphasis first, so goldmark can render lists and emphasis
// without html.WithUnsafe.
type FreeTextConverter struct {
	md goldmark.Markdown
}

// NewFreeTextConverter creates a converter with GFM extensions, matching
// the light markdown dialect the source bodies use.
func NewFreeTextConverter() *FreeTextConverter {
	return &FreeTextConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithXHTML()),
		),
	}
}

// ToHTML converts a free-form body to an HTML fragment. Lists get the
// page's resume-list class. Conversion failures degrade to escaped verbatim
// text; free-form rendering never fails the run.
func (c *FreeTextConverter) ToHTML(text string) string {
	normalized := normalizeFreeText(text)
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(normalized), &buf); err != nil {
		return "<p>" + escapeInline(text) + "</p>"
	}
	out := strings.TrimSpace(buf.String())
	return strings.ReplaceAll(out, "<ul>", `<ul class="resume-list">`)
}

// InlineHTML converts a free-form body and unwraps the result when it is a
// single paragraph, for regions that splice into inline context.
func (c *FreeTextConverter) InlineHTML(text string) string {
	out := c.ToHTML(text)
	if m := paragraph.FindStringSubmatch(out); m != nil && !strings.Contains(m[1], "<p>") {
		return strings.TrimSpace(m[1])
	}
	return out
}

// normalizeFreeText rewrites DOX inline tags to markdown emphasis and drops
// the visual-only "---" separator lines and @fill tokens.
func normalizeFreeText(text string) string {
	text = boldTag.ReplaceAllString(text, "**$1**")
	text = italicTag.ReplaceAllString(text, "*$1*")
	text = ruleOnly.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "@fill", "")
}
