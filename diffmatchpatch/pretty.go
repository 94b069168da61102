package diffmatchpatch

import (
	"html"
	"strings"
)

// DiffPrettyHtml renders diffs as an HTML fragment: insertions wrapped in
// a green <ins>, deletions in a red <del>, equalities in a plain <span>.
// Intended as a starting point for a caller's own display code, not as a
// finished UI.
func (dmp *DiffMatchPatch) DiffPrettyHtml(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.ReplaceAll(html.EscapeString(d.Text), "\n", "&para;<br>")
		switch d.Type {
		case DiffInsert:
			b.WriteString(`<ins style="background:#e6ffe6;">`)
			b.WriteString(text)
			b.WriteString("</ins>")
		case DiffDelete:
			b.WriteString(`<del style="background:#ffe6e6;">`)
			b.WriteString(text)
			b.WriteString("</del>")
		case DiffEqual:
			b.WriteString("<span>")
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}

// DiffPrettyText renders diffs for a terminal: insertions in green,
// deletions in red, via ANSI SGR escapes.
func (dmp *DiffMatchPatch) DiffPrettyText(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteString("\x1b[32m")
			b.WriteString(d.Text)
			b.WriteString("\x1b[0m")
		case DiffDelete:
			b.WriteString("\x1b[31m")
			b.WriteString(d.Text)
			b.WriteString("\x1b[0m")
		case DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
