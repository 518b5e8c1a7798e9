package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/dmi3/freshreadme/internal/model"
)

func sampleSummary() m.Summary {
	return m.NewSummary(m.ModeUpdate, []m.DivergenceReport{
		{
			ID:         "snippet1",
			Status:     m.StatusStale,
			Source:     &m.Location{Path: "src/Examples.java", Line: 11},
			SourceText: "String expected = \"three words\";",
			Docs: []m.DocDivergence{{
				Location: m.DocLocation{Path: "README.md", Line: 5, StartOffset: 80, EndOffset: 140},
				Text:     "String expected = \"three  words\";\n",
				Diff:     "-String expected = \"three  words\";\n+String expected = \"three words\";\n",
			}},
		},
		{
			ID:     "snippet9",
			Status: m.StatusMalformed,
			Problems: []m.StructuralError{{
				Kind:    m.KindMalformed,
				ID:      "snippet9",
				Path:    "docs/guide.md",
				Line:    12,
				Message: `anchor for snippet "snippet9" is not followed by a fenced code block`,
			}},
		},
	}, []m.Repair{{ID: "snippet1", Path: "README.md", Line: 5}})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{" JSON ", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, m.ErrConfiguration)
}

func TestReportStore_EncodeJSON(t *testing.T) {
	store := NewReportStore(NewMemorySourceFSAdapter())
	var buf bytes.Buffer

	require.NoError(t, store.Encode(context.Background(), &buf, FormatJSON, sampleSummary()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "update", decoded["mode"])
	assert.Equal(t, "structural", decoded["outcome"])

	reports, ok := decoded["reports"].([]any)
	require.True(t, ok)
	require.Len(t, reports, 2)

	first, ok := reports[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "snippet1", first["id"])
	assert.Equal(t, "stale", first["status"])
	assert.Equal(t, map[string]any{"path": "src/Examples.java", "line": float64(11)}, first["source"])
}

func TestReportStore_EncodeYAML(t *testing.T) {
	store := NewReportStore(NewMemorySourceFSAdapter())
	var buf bytes.Buffer

	require.NoError(t, store.Encode(context.Background(), &buf, FormatYAML, sampleSummary()))

	var decoded struct {
		Outcome string `yaml:"outcome"`
		Reports []struct {
			ID     string `yaml:"id"`
			Status string `yaml:"status"`
		} `yaml:"reports"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "structural", decoded.Outcome)
	require.Len(t, decoded.Reports, 2)
	assert.Equal(t, "malformed", decoded.Reports[1].Status)
}

func TestReportStore_EncodeRejectsText(t *testing.T) {
	store := NewReportStore(NewMemorySourceFSAdapter())

	err := store.Encode(context.Background(), &bytes.Buffer{}, FormatText, sampleSummary())

	assert.ErrorIs(t, err, m.ErrConfiguration)
}

func TestReportStore_SaveAndLoad(t *testing.T) {
	tests := []struct {
		name   string
		path   m.Path
		format Format
	}{
		{"json", "out/report.json", FormatJSON},
		{"yaml", "out/report.yaml", FormatYAML},
		{"text falls back to json", "report.txt", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newMemAdapter(t, map[string]string{"out/.keep": ""})
			store := NewReportStore(fs)
			summary := sampleSummary()

			require.NoError(t, store.SaveReport(context.Background(), tt.path, tt.format, summary))

			loaded, err := store.LoadReport(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, summary, loaded)
		})
	}
}

func TestReportStore_LoadReportErrors(t *testing.T) {
	fs := newMemAdapter(t, map[string]string{"broken.json": "{not json"})
	store := NewReportStore(fs)

	_, err := store.LoadReport(context.Background(), "broken.json")
	assert.ErrorIs(t, err, m.ErrIO)

	_, err = store.LoadReport(context.Background(), "absent.json")
	assert.ErrorIs(t, err, m.ErrIO)

	require.NoError(t, util.WriteFile(fs.Filesystem(), "bad.yaml", []byte("outcome: sideways\n"), 0o644))
	_, err = store.LoadReport(context.Background(), "bad.yaml")
	assert.ErrorIs(t, err, m.ErrIO)
}
