// Package latex serializes CV records into the macro vocabulary of the
// sidebar résumé template and fills its @@NAME@@-style placeholders.
package latex

import (
	"strings"

	"github.com/alnah/go-doxcv/internal/dox"
)

// specialChars is a single-pass replacer for LaTeX special characters.
// strings.Replacer never rescans replacement text, so the inserted
// backslashes are not escaped again.
var specialChars = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape escapes LaTeX special characters in plain text.
func Escape(s string) string {
	return specialChars.Replace(s)
}

// escapeInline escapes text that may carry <b>/<em> markup, translating the
// markup to \textbf / \emph rather than stripping it.
func escapeInline(s string) string {
	marked := dox.MarkEmphasis(s)
	escaped := Escape(marked)
	return dox.UnmarkEmphasis(escaped, `\textbf{`, `}`, `\emph{`, `}`)
}
