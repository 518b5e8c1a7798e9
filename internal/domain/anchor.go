package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Built-in anchor presets.
const (
	// AnchorSourceLink matches `<!-- [freshReadmeSource](path#id) -->`.
	AnchorSourceLink = "source-link"
	// AnchorMarker matches `<!-- freshReadmeSnippet: id -->`.
	AnchorMarker = "marker"
)

const sourceLinkPattern = `^\s*<!--.*\[freshReadmeSource\]\((?P<path>[^)#]*)(?:#(?P<id>[^)\s]*))?\).*-->\s*$`

// Anchor is what an anchor line declares about the fenced block below it.
type Anchor struct {
	ID   m.SnippetID
	Path m.Path
}

// AnchorStrategy recognizes the line declaring which snippet the next fenced
// block shows.
type AnchorStrategy interface {
	MatchAnchor(line string) (Anchor, bool)
}

// RegexAnchor is an AnchorStrategy driven by a regular expression with the
// named groups "id" and/or "path".
type RegexAnchor struct {
	re      *regexp.Regexp
	idIdx   int
	pathIdx int
}

// NewAnchorStrategy resolves a preset name or compiles a custom expression.
// The marker preset uses tag.
func NewAnchorStrategy(spec string, tag string) (*RegexAnchor, error) {
	switch strings.TrimSpace(spec) {
	case "", AnchorSourceLink:
		return NewRegexAnchor(sourceLinkPattern)
	case AnchorMarker:
		return NewRegexAnchor(`^\s*<!--\s*` + regexp.QuoteMeta(tag) + `:\s*(?P<id>[\w.\-/]+)\s*-->\s*$`)
	}

	return NewRegexAnchor(spec)
}

// NewRegexAnchor compiles expr. It must contain a named group "id" or "path".
func NewRegexAnchor(expr string) (*RegexAnchor, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: anchor pattern %q: %w", m.ErrConfiguration, expr, err)
	}

	anchor := &RegexAnchor{re: re, idIdx: re.SubexpIndex("id"), pathIdx: re.SubexpIndex("path")}
	if anchor.idIdx < 0 && anchor.pathIdx < 0 {
		return nil, fmt.Errorf("%w: anchor pattern %q has no (?P<id>...) or (?P<path>...) group", m.ErrConfiguration, expr)
	}

	return anchor, nil
}

// MatchAnchor implements AnchorStrategy. A match with neither an id nor a
// path is not an anchor.
func (a *RegexAnchor) MatchAnchor(line string) (Anchor, bool) {
	match := a.re.FindStringSubmatch(line)
	if match == nil {
		return Anchor{}, false
	}

	var anchor Anchor
	if a.idIdx >= 0 {
		anchor.ID = m.SnippetID(strings.TrimSpace(match[a.idIdx]))
	}

	if a.pathIdx >= 0 {
		anchor.Path = m.Path(strings.TrimSpace(match[a.pathIdx]))
	}

	if anchor.ID == "" && anchor.Path == "" {
		return Anchor{}, false
	}

	return anchor, true
}

// resolveAnchor fills in the id of a whole-file include: the referenced path
// is resolved against the directory of the documentation file.
func resolveAnchor(docPath m.Path, anchor Anchor) Anchor {
	if anchor.Path != "" {
		anchor.Path = m.Path(path.Clean(path.Join(path.Dir(string(docPath)), string(anchor.Path))))
	}

	if anchor.ID == "" {
		anchor.ID = m.FileIncludeID(anchor.Path)
	}

	return anchor
}
