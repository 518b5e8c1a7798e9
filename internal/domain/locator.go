package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/dmi3/freshreadme/internal/model"
)

var (
	openingFence = regexp.MustCompile("^([ \t]*)(`{3,}|~{3,})(.*)$")
	closingFence = regexp.MustCompile("^[ \t]*(`{3,}|~{3,})[ \t]*$")
)

// LocateResult holds the anchored regions found in one documentation file.
type LocateResult struct {
	Snippets []m.DocSnippet
	Problems []m.StructuralError
}

type textLine struct {
	text  string
	start int // offset of the first byte of the line
	end   int // offset just past the line terminator
}

type fence struct {
	char   byte
	length int
	indent string
}

// regionBuilder tracks the fenced block currently open while locating.
type regionBuilder struct {
	anchor    *Anchor
	line      int
	fence     fence
	openStart int
	bodyStart int
}

// LocateDocs returns every anchored fenced region of a documentation file.
// Anchors inside a fenced block are ignored.
func LocateDocs(path m.Path, text string, strategy AnchorStrategy) LocateResult {
	var (
		result  LocateResult
		pending *Anchor
		pendAt  int
		region  *regionBuilder
	)

	seen := map[m.SnippetID]bool{}
	duplicated := map[m.SnippetID]bool{}

	for i, line := range splitWithOffsets(text) {
		lineNo := i + 1

		if region != nil {
			if !region.fence.closedBy(line.text) {
				continue
			}

			if region.anchor != nil {
				result.add(path, region, line, text, seen, duplicated)
			}

			region = nil

			continue
		}

		if pending != nil {
			if f, ok := parseOpeningFence(line.text); ok {
				region = &regionBuilder{anchor: pending, line: pendAt, fence: f, openStart: line.start, bodyStart: line.end}
				pending = nil

				continue
			}

			result.Problems = append(result.Problems, malformedAnchor(path, *pending, pendAt))
			pending = nil
		}

		if f, ok := parseOpeningFence(line.text); ok {
			region = &regionBuilder{fence: f, bodyStart: line.end}
			continue
		}

		if anchor, ok := strategy.MatchAnchor(line.text); ok {
			resolved := resolveAnchor(path, anchor)
			pending = &resolved
			pendAt = lineNo
		}
	}

	if pending != nil {
		result.Problems = append(result.Problems, malformedAnchor(path, *pending, pendAt))
	}

	if region != nil && region.anchor != nil {
		result.Problems = append(result.Problems, m.StructuralError{
			Kind:    m.KindUnterminated,
			ID:      region.anchor.ID,
			Path:    path,
			Line:    region.line,
			Message: fmt.Sprintf("fenced block for snippet %q is never closed", region.anchor.ID),
		})
	}

	return result
}

// Locate returns the single region documenting id, m.ErrMissingInDocs when
// there is none, or the structural error that prevents using it.
func Locate(path m.Path, text string, id m.SnippetID, strategy AnchorStrategy) (m.DocSnippet, error) {
	result := LocateDocs(path, text, strategy)

	for _, problem := range result.Problems {
		if problem.ID == id {
			return m.DocSnippet{}, problem
		}
	}

	for _, snippet := range result.Snippets {
		if snippet.ID == id {
			return snippet, nil
		}
	}

	return m.DocSnippet{}, fmt.Errorf("%w: %s in %s", m.ErrMissingInDocs, id, path)
}

func (r *LocateResult) add(path m.Path, region *regionBuilder, closing textLine, text string, seen, duplicated map[m.SnippetID]bool) {
	id := region.anchor.ID

	if seen[id] {
		if !duplicated[id] {
			duplicated[id] = true
			r.Problems = append(r.Problems, m.StructuralError{
				Kind:    m.KindDuplicateID,
				ID:      id,
				Path:    path,
				Line:    region.line,
				Message: fmt.Sprintf("snippet %q is documented a second time in the same file", id),
			})
		}

		return
	}

	seen[id] = true
	end := closing.start
	body := text[region.bodyStart:end]

	r.Snippets = append(r.Snippets, m.DocSnippet{
		ID:          id,
		Path:        path,
		AnchorLine:  region.line,
		StartOffset: region.bodyStart,
		EndOffset:   end,
		Text:        body,
		Indent:      regionIndent(body, region.fence.indent),
		SourceRef:   region.anchor.Path,
		Fence: m.Fence{
			Char:      region.fence.char,
			Length:    region.fence.length,
			OpenStart: region.openStart,
			CloseEnd:  closing.end,
		},
	})
}

func malformedAnchor(path m.Path, anchor Anchor, line int) m.StructuralError {
	return m.StructuralError{
		Kind:    m.KindMalformed,
		ID:      anchor.ID,
		Path:    path,
		Line:    line,
		Message: fmt.Sprintf("anchor for snippet %q is not followed by a fenced code block", anchor.ID),
	}
}

func parseOpeningFence(line string) (fence, bool) {
	match := openingFence.FindStringSubmatch(line)
	if match == nil {
		return fence{}, false
	}

	marker := match[2]
	if marker[0] == '`' && strings.Contains(match[3], "`") {
		return fence{}, false
	}

	return fence{char: marker[0], length: len(marker), indent: match[1]}, true
}

func (f fence) closedBy(line string) bool {
	match := closingFence.FindStringSubmatch(line)
	if match == nil {
		return false
	}

	marker := match[1]

	return marker[0] == f.char && len(marker) >= f.length
}

// fenceRun returns the length of the run of c that starts line after its
// indentation.
func fenceRun(line string, c byte) int {
	i := leadingWhitespace(line)
	j := i

	for j < len(line) && line[j] == c {
		j++
	}

	return j - i
}

// regionIndent returns the indent prefix of the least indented non-blank
// body line, or the fence indent for an empty body.
func regionIndent(body string, fenceIndent string) string {
	indent := ""
	found := false

	for _, line := range SplitLines(body) {
		if isBlank(line) {
			continue
		}

		prefix := line[:leadingWhitespace(line)]
		if !found || len(prefix) < len(indent) {
			indent = prefix
			found = true
		}
	}

	if !found {
		return fenceIndent
	}

	return indent
}

// splitWithOffsets splits text into lines, remembering where each starts and
// where its terminator ends.
func splitWithOffsets(text string) []textLine {
	var lines []textLine

	start := 0
	for start < len(text) {
		idx := strings.IndexAny(text[start:], "\r\n")
		if idx < 0 {
			lines = append(lines, textLine{text: text[start:], start: start, end: len(text)})
			break
		}

		end := start + idx + 1
		if text[start+idx] == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}

		lines = append(lines, textLine{text: text[start : start+idx], start: start, end: end})
		start = end
	}

	return lines
}
