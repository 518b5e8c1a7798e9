package model

import "fmt"

// Status represents the outcome of comparing one snippet id.
type Status int

const (
	// StatusInSync means every documented copy equals the source after normalization.
	StatusInSync Status = iota
	// StatusStale means at least one documented copy differs from the source.
	StatusStale
	// StatusMissingInDocs means the id exists in source but no doc region shows it.
	StatusMissingInDocs
	// StatusMissingInSource means a doc region references an id no source defines.
	StatusMissingInSource
	// StatusDuplicateID means the id has more than one marker pair or doc region.
	StatusDuplicateID
	// StatusUnterminated means a marker or fence was opened and never closed.
	StatusUnterminated
	// StatusMalformed means an anchor is not followed by a fenced block.
	StatusMalformed
)

var statusNames = map[Status]string{
	StatusInSync:          "in_sync",
	StatusStale:           "stale",
	StatusMissingInDocs:   "missing_in_docs",
	StatusMissingInSource: "missing_in_source",
	StatusDuplicateID:     "duplicate_id",
	StatusUnterminated:    "unterminated",
	StatusMalformed:       "malformed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so reports encode statuses by name.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown status %q", string(text))
}

// IsStructural reports whether the status signals tooling misuse rather than drift.
func (s Status) IsStructural() bool {
	return s == StatusDuplicateID || s == StatusUnterminated || s == StatusMalformed
}

// IsDrift reports whether the status is an expected divergence between source and docs.
func (s Status) IsDrift() bool {
	return s == StatusStale || s == StatusMissingInDocs || s == StatusMissingInSource
}

// DocLocation points at an anchored region in a documentation file.
type DocLocation struct {
	Path        Path `json:"path" yaml:"path"`
	Line        int  `json:"line" yaml:"line"`
	StartOffset int  `json:"start_offset" yaml:"start_offset"`
	EndOffset   int  `json:"end_offset" yaml:"end_offset"`
}

// DocDivergence is the comparison result for one documented copy of a snippet.
type DocDivergence struct {
	Location DocLocation `json:"location" yaml:"location"`
	Text     string      `json:"text" yaml:"text"`
	InSync   bool        `json:"in_sync" yaml:"in_sync"`
	Diff     string      `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// DivergenceReport is produced for every id seen in either tree.
type DivergenceReport struct {
	ID         SnippetID         `json:"id" yaml:"id"`
	Status     Status            `json:"status" yaml:"status"`
	Source     *Location         `json:"source,omitempty" yaml:"source,omitempty"`
	SourceText string            `json:"source_text,omitempty" yaml:"source_text,omitempty"`
	Docs       []DocDivergence   `json:"docs,omitempty" yaml:"docs,omitempty"`
	Problems   []StructuralError `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Repair records one documentation region rewritten in update mode.
type Repair struct {
	ID   SnippetID `json:"id" yaml:"id"`
	Path Path      `json:"path" yaml:"path"`
	Line int       `json:"line" yaml:"line"`
}

// Mode selects between the read-only and the repairing run.
type Mode string

const (
	// ModeCheck only reports divergences.
	ModeCheck Mode = "check"
	// ModeUpdate rewrites stale documentation regions.
	ModeUpdate Mode = "update"
	// ModeList indexes snippets without judging the run.
	ModeList Mode = "list"
)

// Outcome is the overall result of a run.
type Outcome int

const (
	// OutcomeInSync means nothing needs attention.
	OutcomeInSync Outcome = iota
	// OutcomeDrift means some snippet drifted or is missing.
	OutcomeDrift
	// OutcomeStructural means markers or anchors are ill-formed.
	OutcomeStructural
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInSync:
		return "in_sync"
	case OutcomeDrift:
		return "drift"
	case OutcomeStructural:
		return "structural"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{OutcomeInSync, OutcomeDrift, OutcomeStructural} {
		if outcome.String() == string(text) {
			*o = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", string(text))
}

// Summary aggregates the reports of a single run.
type Summary struct {
	Mode     Mode               `json:"mode" yaml:"mode"`
	Outcome  Outcome            `json:"outcome" yaml:"outcome"`
	Reports  []DivergenceReport `json:"reports" yaml:"reports"`
	Repaired []Repair           `json:"repaired,omitempty" yaml:"repaired,omitempty"`
}

// NewSummary builds a summary and computes its outcome. In update mode stale
// entries whose every region was rewritten no longer count against the run.
func NewSummary(mode Mode, reports []DivergenceReport, repaired []Repair) Summary {
	s := Summary{Mode: mode, Reports: reports, Repaired: repaired}
	s.Outcome = s.computeOutcome()

	return s
}

// Unresolved returns the reports that still need manual attention.
func (s Summary) Unresolved() []DivergenceReport {
	fixed := map[SnippetID]int{}
	for _, r := range s.Repaired {
		fixed[r.ID]++
	}

	var out []DivergenceReport

	for _, report := range s.Reports {
		if report.Status == StatusInSync {
			continue
		}

		if report.Status == StatusStale && s.Mode == ModeUpdate && fixed[report.ID] >= staleCount(report) {
			continue
		}

		out = append(out, report)
	}

	return out
}

func (s Summary) computeOutcome() Outcome {
	outcome := OutcomeInSync

	for _, report := range s.Unresolved() {
		if report.Status.IsStructural() {
			return OutcomeStructural
		}

		outcome = OutcomeDrift
	}

	return outcome
}

func staleCount(report DivergenceReport) int {
	n := 0

	for _, doc := range report.Docs {
		if !doc.InSync {
			n++
		}
	}

	return n
}
