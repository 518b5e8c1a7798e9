package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Edit replaces the bytes [Start, End) of a file.
type Edit struct {
	ID          m.SnippetID
	Line        int
	Start       int
	End         int
	Replacement string
}

// ApplyEdits applies all edits of one file in a single pass, back to front
// so earlier offsets stay valid. Overlapping edits are rejected.
func ApplyEdits(text string, edits []Edit) (string, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	limit := len(text)

	for _, edit := range sorted {
		if edit.Start < 0 || edit.Start > edit.End || edit.End > limit {
			return "", fmt.Errorf("edit for %s [%d,%d) is out of range or overlaps another edit", edit.ID, edit.Start, edit.End)
		}

		text = text[:edit.Start] + edit.Replacement + text[edit.End:]
		limit = edit.Start
	}

	return text, nil
}

// RenderReplacement turns source body lines into the text of a documentation
// region: the source's common indentation is replaced by the region's own
// indent prefix and lines end with the document's terminator.
func RenderReplacement(lines []string, indent string, newline string) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder

	for _, line := range Dedent(lines) {
		if !isBlank(line) {
			b.WriteString(indent)
			b.WriteString(line)
		}

		b.WriteString(newline)
	}

	return b.String()
}

// RegionEdit returns the edit replacing the body of doc with rendered. When a
// rendered line would close the region early, both fence lines are widened
// to one character more than the longest fence run in the body.
func RegionEdit(text string, doc m.DocSnippet, rendered string) Edit {
	edit := Edit{ID: doc.ID, Line: doc.AnchorLine, Start: doc.StartOffset, End: doc.EndOffset, Replacement: rendered}

	f := fence{char: doc.Fence.Char, length: doc.Fence.Length}
	if f.length == 0 {
		return edit
	}

	longest := 0
	closes := false

	for _, line := range splitWithOffsets(rendered) {
		if f.closedBy(line.text) {
			closes = true
		}

		longest = max(longest, fenceRun(line.text, f.char))
	}

	if !closes {
		return edit
	}

	marker := strings.Repeat(string(f.char), longest+1)

	edit.Start = doc.Fence.OpenStart
	edit.End = doc.Fence.CloseEnd
	edit.Replacement = widenFence(text[doc.Fence.OpenStart:doc.StartOffset], f.char, marker) +
		rendered +
		widenFence(text[doc.EndOffset:doc.Fence.CloseEnd], f.char, marker)

	return edit
}

func widenFence(line string, c byte, marker string) string {
	i := leadingWhitespace(line)

	return line[:i] + marker + line[i+fenceRun(line, c):]
}

// DetectNewline returns the terminator used by the first line of text.
// Text without any terminator gets "\n".
func DetectNewline(text string) string {
	idx := strings.IndexAny(text, "\r\n")
	if idx < 0 || text[idx] == '\n' {
		return "\n"
	}

	if idx+1 < len(text) && text[idx+1] == '\n' {
		return "\r\n"
	}

	return "\r"
}
