package diffmatchpatch

import (
	"fmt"
	"strings"
)

// Unified runs DiffMain over text1/text2 and renders the result as a
// unified diff. Opts can override the number of context lines and the
// "--- "/"+++ " labels (defaults: DefaultContextLines, "text1"/"text2").
func (dmp *DiffMatchPatch) Unified(text1, text2 string, opts ...UnifiedOption) string {
	options := newUnifiedOptions(opts)

	text1Enc, text2Enc, lines := dmp.DiffLinesToChars(text1, text2)
	diffs := dmp.DiffMain(text1Enc, text2Enc, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	return toUnified(diffs, options).String()
}

// DiffUnified renders an already-computed edit script as a unified diff.
func (dmp *DiffMatchPatch) DiffUnified(diffs []Diff, opts ...UnifiedOption) string {
	return toUnified(diffs, newUnifiedOptions(opts)).String()
}

// unified is a rendered-but-not-yet-stringified unified diff: a pair of
// file labels plus the hunks carved out of an edit script.
type unified struct {
	label1, label2 string
	hunks          []hunk
}

// hunk is one contiguous block of changed lines plus its surrounding
// context, tagged with the line number each side starts at.
type hunk struct {
	fromLine int
	toLine   int
	diffs    []Diff
}

// toUnified groups a line-oriented edit script into hunks, merging any two
// changes separated by no more than 2*contextLines of untouched lines into
// a single hunk.
func toUnified(diffs []Diff, opts unifiedOptions) unified {
	u := unified{label1: opts.text1Label, label2: opts.text2Label}
	if isEqual(diffs) {
		return u
	}

	b := newHunkBuilder(opts.contextLines)
	for _, d := range diffLinewise(diffs) {
		b.feed(d)
	}
	u.hunks = b.finish()
	return u
}

func isEqual(diffs []Diff) bool {
	for _, d := range diffs {
		if d.Type != DiffEqual {
			return false
		}
	}
	return true
}

// hunkBuilder accumulates one-line-per-Diff edits into hunks, closing a
// hunk once the run of untouched lines since its last change grows beyond
// 2*contextLines and reopening a fresh one (seeded with up to contextLines
// lines of carry-over) on the next change.
type hunkBuilder struct {
	contextLines int
	hunks        []hunk
	current      *hunk
	carry        []Diff // buffered DiffEqual lines not yet assigned to a hunk
	line1, line2 int     // 1-indexed cursor into each side
}

func newHunkBuilder(contextLines int) *hunkBuilder {
	return &hunkBuilder{contextLines: contextLines}
}

func (b *hunkBuilder) feed(d Diff) {
	switch d.Type {
	case DiffDelete:
		b.line1++
	case DiffInsert:
		b.line2++
	case DiffEqual:
		b.line1++
		b.line2++
	}

	if d.Type == DiffEqual {
		b.carry = append(b.carry, d)
		return
	}

	if b.current != nil && len(b.carry) > 2*b.contextLines {
		b.closeHunk()
	}
	if b.current == nil {
		b.openHunk(d)
	} else {
		b.current.diffs = append(b.current.diffs, b.carry...)
	}
	b.carry = nil
	b.current.diffs = append(b.current.diffs, d)
}

// openHunk starts a new hunk, carrying at most contextLines of the
// buffered equal lines in front of it as leading context.
func (b *hunkBuilder) openHunk(d Diff) {
	lead := len(b.carry)
	if lead > b.contextLines {
		lead = b.contextLines
	}
	fromLine := b.line1 - lead
	toLine := b.line2 - lead
	// Only one side's cursor has advanced for this diff so far; account
	// for the one that hasn't.
	switch d.Type {
	case DiffDelete:
		toLine++
	case DiffInsert:
		fromLine++
	}
	b.current = &hunk{
		fromLine: fromLine,
		toLine:   toLine,
		diffs:    append([]Diff{}, b.carry[len(b.carry)-lead:]...),
	}
}

// closeHunk trims the buffered equal lines to contextLines of trailing
// context, appends them, and files the hunk away. The buffer itself is
// left intact so openHunk can draw its own leading context from it.
func (b *hunkBuilder) closeHunk() {
	trail := len(b.carry)
	if trail > b.contextLines {
		trail = b.contextLines
	}
	b.current.diffs = append(b.current.diffs, b.carry[:trail]...)
	b.hunks = append(b.hunks, *b.current)
	b.current = nil
}

func (b *hunkBuilder) finish() []hunk {
	if b.current != nil {
		b.closeHunk()
	}
	return b.hunks
}

// lineAccumulator re-chunks a character-level edit script into one Diff
// per line (including its trailing newline, if any), folding a deleted
// and an inserted copy of the same unchanged line back into one DiffEqual.
type lineAccumulator struct {
	out                    []Diff
	pendingDel, pendingIns string
}

func (a *lineAccumulator) feed(op Operation, text string) {
	switch op {
	case DiffDelete:
		a.pendingDel += text
	case DiffInsert:
		a.pendingIns += text
	default:
		a.pendingDel += text
		a.pendingIns += text
	}

	if strings.HasSuffix(a.pendingDel, "\n") && a.pendingDel == a.pendingIns {
		a.out = append(a.out, Diff{DiffEqual, a.pendingDel})
		a.pendingDel, a.pendingIns = "", ""
	}
	if strings.HasSuffix(a.pendingDel, "\n") {
		a.out = append(a.out, Diff{DiffDelete, a.pendingDel})
		a.pendingDel = ""
	}
	if strings.HasSuffix(a.pendingIns, "\n") {
		a.out = append(a.out, Diff{DiffInsert, a.pendingIns})
		a.pendingIns = ""
	}
}

// flush drains a final line with no trailing newline, left behind in
// pendingDel/pendingIns once every segment has been fed through feed.
func (a *lineAccumulator) flush() {
	if a.pendingDel != "" && a.pendingDel == a.pendingIns {
		a.out = append(a.out, Diff{DiffEqual, a.pendingDel})
		a.pendingDel, a.pendingIns = "", ""
	}
	if a.pendingDel != "" {
		a.out = append(a.out, Diff{DiffDelete, a.pendingDel})
	}
	if a.pendingIns != "" {
		a.out = append(a.out, Diff{DiffInsert, a.pendingIns})
	}
}

// diffLinewise splits diffs so each element is exactly one line (including
// its newline), after first sliding single edits onto newline boundaries
// with diffCleanupNewline, then reorders each hunk's deletions ahead of
// its insertions.
func diffLinewise(diffs []Diff) []Diff {
	diffs = diffCleanupNewline(diffs)

	acc := &lineAccumulator{}
	for _, d := range diffs {
		for _, segment := range strings.SplitAfter(d.Text, "\n") {
			acc.feed(d.Type, segment)
		}
	}
	acc.flush()

	return reorderDeletionsFirst(acc.out)
}

// diffCleanupNewline looks for a single edit flanked by two equalities and,
// when possible, slides it sideways so its boundary lands on a newline
// instead of splitting a line across the equal/changed boundary.
func diffCleanupNewline(diffs []Diff) []Diff {
	var out []Diff

	for i := 0; i < len(diffs); i++ {
		if i < len(diffs)-2 && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			shared := prefixWithNewline(diffs[i+1].Text, diffs[i+2].Text)
			if shared != "" {
				// ["=A", "±sharedB", "=sharedC"] -> ["=Ashared", "±Bshared", "=C"]
				out = append(out,
					Diff{Type: DiffEqual, Text: diffs[i].Text + shared},
					Diff{Type: diffs[i+1].Type, Text: strings.TrimPrefix(diffs[i+1].Text, shared) + shared},
					Diff{Type: DiffEqual, Text: strings.TrimPrefix(diffs[i+2].Text, shared)},
				)
				i += 2
				continue
			}
		}
		out = append(out, diffs[i])
	}

	return out
}

// prefixWithNewline returns the longest shared prefix of text1 and text2
// that ends in a newline, or "" if no such prefix exists.
func prefixWithNewline(text1, text2 string) string {
	r1, r2 := []rune(text1), []rune(text2)
	prefix := diffCommonPrefix(r1, r2)

	for i := prefix - 1; i >= 0; i-- {
		if r1[i] == '\n' {
			return string(r1[:i+1])
		}
	}
	return ""
}

// reorderDeletionsFirst groups runs of deletions and insertions so every
// deletion in a run precedes every insertion, without reordering across an
// equality.
func reorderDeletionsFirst(diffs []Diff) []Diff {
	var out, dels, ins []Diff

	for _, d := range diffs {
		switch d.Type {
		case DiffDelete:
			dels = append(dels, d)
		case DiffInsert:
			ins = append(ins, d)
		case DiffEqual:
			out = append(out, dels...)
			out = append(out, ins...)
			dels, ins = nil, nil
			out = append(out, d)
		}
	}
	out = append(out, dels...)
	out = append(out, ins...)

	return out
}

// numLines counts the lines belonging to each side of the hunk.
func (h hunk) numLines() (n1, n2 int) {
	for _, d := range h.diffs {
		switch d.Type {
		case DiffDelete:
			n1++
		case DiffInsert:
			n2++
		case DiffEqual:
			n1++
			n2++
		}
	}
	return n1, n2
}

func (h hunk) String() string {
	var b strings.Builder
	b.WriteString("@@")

	n1, n2 := h.numLines()
	writeRange := func(line, n int) {
		switch {
		case n > 1:
			fmt.Fprintf(&b, "%d,%d", line, n)
		case line == 1 && n == 0:
			// An insertion-only or deletion-only hunk against an empty file;
			// GNU diff -u prints "0,0" for the empty side here.
			b.WriteString("0,0")
		default:
			fmt.Fprintf(&b, "%d", line)
		}
	}
	b.WriteString(" -")
	writeRange(h.fromLine, n1)
	b.WriteString(" +")
	writeRange(h.toLine, n2)
	b.WriteString(" @@\n")

	for _, d := range h.diffs {
		switch d.Type {
		case DiffDelete:
			b.WriteString("-")
		case DiffInsert:
			b.WriteString("+")
		default:
			b.WriteString(" ")
		}
		b.WriteString(d.Text)
		if !strings.HasSuffix(d.Text, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}

	return b.String()
}

// String renders the full unified diff, or "" if there are no hunks.
func (u unified) String() string {
	if len(u.hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", u.label1)
	fmt.Fprintf(&b, "+++ %s\n", u.label2)
	for _, h := range u.hunks {
		b.WriteString(h.String())
	}
	return b.String()
}

// DefaultContextLines is how many unchanged lines of context Unified
// shows around each change when no UnifiedContextLines option is given.
const DefaultContextLines = 3

// UnifiedOption configures Unified/DiffUnified.
type UnifiedOption func(*unifiedOptions)

type unifiedOptions struct {
	contextLines int
	text1Label   string
	text2Label   string
}

func newUnifiedOptions(opts []UnifiedOption) unifiedOptions {
	o := unifiedOptions{
		contextLines: DefaultContextLines,
		text1Label:   "text1",
		text2Label:   "text2",
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// UnifiedContextLines overrides the number of unchanged lines of context
// shown around each change. A non-positive value resets it to
// DefaultContextLines.
func UnifiedContextLines(lines int) UnifiedOption {
	if lines <= 0 {
		lines = DefaultContextLines
	}
	return func(o *unifiedOptions) { o.contextLines = lines }
}

// UnifiedLabels overrides the "--- "/"+++ " file labels (default
// "text1"/"text2").
func UnifiedLabels(oldLabel, newLabel string) UnifiedOption {
	return func(o *unifiedOptions) {
		o.text1Label = oldLabel
		o.text2Label = newLabel
	}
}
