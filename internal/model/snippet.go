package model

import "strings"

// SnippetID identifies one logical example across the whole tree.
// Ids are case-sensitive.
type SnippetID string

// FileIncludePrefix marks ids synthesized for whole-file includes.
const FileIncludePrefix = "file:"

// IsFileInclude reports whether the id refers to a whole source file rather
// than a marker pair.
func (id SnippetID) IsFileInclude() bool {
	return strings.HasPrefix(string(id), FileIncludePrefix)
}

// IncludedPath returns the file referenced by a whole-file include id.
func (id SnippetID) IncludedPath() Path {
	return Path(strings.TrimPrefix(string(id), FileIncludePrefix))
}

// FileIncludeID builds the id used for a whole-file include of path.
func FileIncludeID(path Path) SnippetID {
	return SnippetID(FileIncludePrefix + string(path))
}

// SourceSnippet is the body found between a marker pair in a source file.
type SourceSnippet struct {
	ID        SnippetID
	Path      Path
	StartLine int // line of the opening marker, 1-based
	EndLine   int // line of the closing marker, 1-based
	Lines     []string
}

// Text joins the body lines with '\n'.
func (s SourceSnippet) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Location returns the position of the opening marker.
func (s SourceSnippet) Location() Location {
	return Location{Path: s.Path, Line: s.StartLine}
}

// DocSnippet is the body of an anchored fenced block in a documentation file.
// Text is always equal to the file content between StartOffset and EndOffset.
type DocSnippet struct {
	ID          SnippetID
	Path        Path
	AnchorLine  int
	StartOffset int
	EndOffset   int
	Text        string
	Indent      string // original indent prefix of the region
	SourceRef   Path   // path written in the anchor, if any
	Fence       Fence
}

// Fence describes the fence lines around a documentation region. The
// opening line spans [OpenStart, StartOffset) of the region and the closing
// line [EndOffset, CloseEnd).
type Fence struct {
	Char      byte // '`' or '~'
	Length    int  // length of the opening marker
	OpenStart int
	CloseEnd  int
}

// Location returns the position of the anchor.
func (d DocSnippet) Location() Location {
	return Location{Path: d.Path, Line: d.AnchorLine}
}
