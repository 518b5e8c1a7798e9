package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TextRoundTrip(t *testing.T) {
	for status, name := range statusNames {
		text, err := status.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var decoded Status
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, status, decoded)
	}

	_, err := Status(42).MarshalText()
	assert.Error(t, err)

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("sideways")))
}

func TestStatus_Classification(t *testing.T) {
	tests := []struct {
		status     Status
		structural bool
		drift      bool
	}{
		{StatusInSync, false, false},
		{StatusStale, false, true},
		{StatusMissingInDocs, false, true},
		{StatusMissingInSource, false, true},
		{StatusDuplicateID, true, false},
		{StatusUnterminated, true, false},
		{StatusMalformed, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.structural, tt.status.IsStructural())
			assert.Equal(t, tt.drift, tt.status.IsDrift())
		})
	}
}

func TestNewSummary_Outcome(t *testing.T) {
	stale := DivergenceReport{ID: "a", Status: StatusStale, Docs: []DocDivergence{{InSync: false}, {InSync: false}}}
	synced := DivergenceReport{ID: "b", Status: StatusInSync}
	broken := DivergenceReport{ID: "c", Status: StatusUnterminated}

	tests := []struct {
		name     string
		mode     Mode
		reports  []DivergenceReport
		repaired []Repair
		want     Outcome
	}{
		{"nothing to report", ModeCheck, nil, nil, OutcomeInSync},
		{"all in sync", ModeCheck, []DivergenceReport{synced}, nil, OutcomeInSync},
		{"stale in check mode", ModeCheck, []DivergenceReport{stale, synced}, nil, OutcomeDrift},
		{"structural wins over drift", ModeCheck, []DivergenceReport{stale, broken}, nil, OutcomeStructural},
		{
			name:     "fully repaired in update mode",
			mode:     ModeUpdate,
			reports:  []DivergenceReport{stale, synced},
			repaired: []Repair{{ID: "a", Path: "README.md", Line: 1}, {ID: "a", Path: "docs/x.md", Line: 3}},
			want:     OutcomeInSync,
		},
		{
			name:     "partially repaired in update mode",
			mode:     ModeUpdate,
			reports:  []DivergenceReport{stale},
			repaired: []Repair{{ID: "a", Path: "README.md", Line: 1}},
			want:     OutcomeDrift,
		},
		{
			name:     "repairs do not count in check mode",
			mode:     ModeCheck,
			reports:  []DivergenceReport{stale},
			repaired: []Repair{{ID: "a", Path: "README.md", Line: 1}, {ID: "a", Path: "docs/x.md", Line: 3}},
			want:     OutcomeDrift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := NewSummary(tt.mode, tt.reports, tt.repaired)
			assert.Equal(t, tt.want, summary.Outcome)
		})
	}
}

func TestOutcome_Text(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeInSync, OutcomeDrift, OutcomeStructural} {
		text, err := outcome.MarshalText()
		require.NoError(t, err)

		var decoded Outcome
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, outcome, decoded)
	}

	var o Outcome
	assert.Error(t, o.UnmarshalText([]byte("maybe")))
}

func TestSnippetID_FileInclude(t *testing.T) {
	id := FileIncludeID("scripts/setup.sh")

	assert.Equal(t, SnippetID("file:scripts/setup.sh"), id)
	assert.True(t, id.IsFileInclude())
	assert.Equal(t, Path("scripts/setup.sh"), id.IncludedPath())
	assert.False(t, SnippetID("snippet1").IsFileInclude())
}

func TestStructuralError(t *testing.T) {
	err := StructuralError{Kind: KindUnterminated, ID: "x", Path: "a.go", Line: 7, Message: `snippet "x" is never closed`}

	assert.Equal(t, `snippet "x" is never closed at a.go:7`, err.Error())
	assert.Equal(t, StatusUnterminated, err.Status())
	assert.Equal(t, StatusDuplicateID, StructuralError{Kind: KindDuplicateID}.Status())
	assert.Equal(t, StatusMalformed, StructuralError{Kind: KindMalformed}.Status())
}
