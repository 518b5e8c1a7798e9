package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/dmi3/freshreadme/internal/model"
)

// DefaultMarkerTag is the tag written in source comments around a snippet.
const DefaultMarkerTag = "freshReadmeSnippet"

// ScanResult holds what the marker scanner found in one source file.
type ScanResult struct {
	Snippets []m.SourceSnippet
	Problems []m.StructuralError
}

// MarkerPattern recognizes marker lines for one tag.
type MarkerPattern struct {
	tag string
	re  *regexp.Regexp
}

// NewMarkerPattern compiles the marker line pattern for tag. A marker line
// is a comment prefix made of non-word characters, the tag, a colon and an
// id, optionally followed by a comment closer.
func NewMarkerPattern(tag string) (*MarkerPattern, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: marker tag is empty", m.ErrConfiguration)
	}

	if strings.ContainsAny(tag, " \t:") {
		return nil, fmt.Errorf("%w: marker tag %q must not contain whitespace or ':'", m.ErrConfiguration, tag)
	}

	expr := `^\s*[^\w\s]+\s*` + regexp.QuoteMeta(tag) + `:\s*([\w.\-/]+)\s*(?:[^\w\s]+\s*)?$`

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: marker tag %q: %w", m.ErrConfiguration, tag, err)
	}

	return &MarkerPattern{tag: tag, re: re}, nil
}

// Tag returns the marker tag.
func (p *MarkerPattern) Tag() string {
	return p.tag
}

// Match returns the id of a marker line.
func (p *MarkerPattern) Match(line string) (m.SnippetID, bool) {
	match := p.re.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}

	return m.SnippetID(match[1]), true
}

// ScanSource extracts every marker pair of a source file. It never fails:
// ill-formed regions end up in ScanResult.Problems.
func ScanSource(path m.Path, text string, pattern *MarkerPattern) ScanResult {
	var result ScanResult

	open := map[m.SnippetID]int{}
	closed := map[m.SnippetID]bool{}
	duplicated := map[m.SnippetID]bool{}
	order := []m.SnippetID{}

	lines := SplitLines(text)

	for i, line := range lines {
		id, ok := pattern.Match(line)
		if !ok {
			continue
		}

		lineNo := i + 1

		switch {
		case duplicated[id]:
			// the duplicate was already reported
		case closed[id]:
			duplicated[id] = true
			result.Problems = append(result.Problems, m.StructuralError{
				Kind:    m.KindDuplicateID,
				ID:      id,
				Path:    path,
				Line:    lineNo,
				Message: fmt.Sprintf("snippet %q appears a second time", id),
			})
		default:
			start, isOpen := open[id]
			if !isOpen {
				open[id] = lineNo
				order = append(order, id)

				continue
			}

			delete(open, id)
			closed[id] = true

			body := make([]string, lineNo-start-1)
			copy(body, lines[start:lineNo-1])

			result.Snippets = append(result.Snippets, m.SourceSnippet{
				ID:        id,
				Path:      path,
				StartLine: start,
				EndLine:   lineNo,
				Lines:     body,
			})
		}
	}

	for _, id := range order {
		start, isOpen := open[id]
		if !isOpen {
			continue
		}

		result.Problems = append(result.Problems, m.StructuralError{
			Kind:    m.KindUnterminated,
			ID:      id,
			Path:    path,
			Line:    start,
			Message: fmt.Sprintf("snippet %q is never closed", id),
		})
	}

	return result
}
