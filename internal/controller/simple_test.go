package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/dmi3/freshreadme/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func staleSummary(mode m.Mode, repaired []m.Repair) m.Summary {
	return m.NewSummary(mode, []m.DivergenceReport{
		{
			ID:     "snippet1",
			Status: m.StatusStale,
			Source: &m.Location{Path: "src/Examples.java", Line: 11},
			Docs: []m.DocDivergence{
				{Location: m.DocLocation{Path: "README.md", Line: 5}, Diff: "-three  words\n+three words\n"},
				{Location: m.DocLocation{Path: "docs/guide.md", Line: 9}, InSync: true},
			},
		},
		{
			ID:     "snippet2",
			Status: m.StatusInSync,
			Source: &m.Location{Path: "src/Examples.java", Line: 23},
			Docs:   []m.DocDivergence{{Location: m.DocLocation{Path: "README.md", Line: 13}, InSync: true}},
		},
	}, repaired)
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	tests := []struct {
		name         string
		summary      m.Summary
		wantContains []string
		wantMissing  []string
	}{
		{
			name:    "stale snippet shows its diff",
			summary: staleSummary(m.ModeCheck, nil),
			wantContains: []string{
				"SNIPPET", "snippet1", "stale", "src/Examples.java:11",
				"README.md:5", "-three  words", "+three words",
				"1 snippet(s) need attention: snippet1",
			},
			wantMissing: []string{"docs/guide.md:9", "Updated"},
		},
		{
			name:    "repaired snippet is listed and no longer needs attention",
			summary: staleSummary(m.ModeUpdate, []m.Repair{{ID: "snippet1", Path: "README.md", Line: 5}}),
			wantContains: []string{
				"Updated 1 region(s):", "README.md:5  snippet1", "All snippets are in sync.",
			},
			wantMissing: []string{"-three  words", "need attention"},
		},
		{
			name: "missing and structural entries explain themselves",
			summary: m.NewSummary(m.ModeCheck, []m.DivergenceReport{
				{
					ID:     "ghost",
					Status: m.StatusMissingInSource,
					Docs:   []m.DocDivergence{{Location: m.DocLocation{Path: "README.md", Line: 40}}},
				},
				{
					ID:     "lonely",
					Status: m.StatusMissingInDocs,
					Source: &m.Location{Path: "src/a.go", Line: 3},
				},
				{
					ID:     "twice",
					Status: m.StatusDuplicateID,
					Problems: []m.StructuralError{{
						Kind: m.KindDuplicateID, ID: "twice", Path: "src/b.go", Line: 8,
						Message: `snippet "twice" appears a second time`,
					}},
				},
			}, nil),
			wantContains: []string{
				"shown at README.md:40 but defined in no source file",
				"defined at src/a.go:3 but shown in no documentation file",
				`snippet "twice" appears a second time at src/b.go:8`,
				"3 snippet(s) need attention: ghost, lonely, twice",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd()
			ui := NewSimpleUI(cmd)

			if err := ui.DisplaySummary(context.Background(), tt.summary); err != nil {
				t.Fatalf("DisplaySummary() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}

			for _, unwanted := range tt.wantMissing {
				if strings.Contains(output, unwanted) {
					t.Errorf("output unexpectedly contains %q:\n%s", unwanted, output)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayList(t *testing.T) {
	cmd, buf := newTestCmd()
	ui := NewSimpleUI(cmd)

	reports := staleSummary(m.ModeList, nil).Reports
	reports = append(reports, m.DivergenceReport{ID: "undocumented", Status: m.StatusMissingInDocs, Source: &m.Location{Path: "src/a.go", Line: 1}})

	if err := ui.DisplayList(context.Background(), reports); err != nil {
		t.Fatalf("DisplayList() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"DOCUMENTED IN", "snippet1", "README.md:5", "docs/guide.md:9", "undocumented", "missing_in_docs"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	if !strings.Contains(strings.ToLower(output), "total 3") {
		t.Errorf("output missing total:\n%s", output)
	}
}

func TestSimpleUI_DisplayListEmpty(t *testing.T) {
	cmd, buf := newTestCmd()

	if err := NewSimpleUI(cmd).DisplayList(context.Background(), nil); err != nil {
		t.Fatalf("DisplayList() error = %v", err)
	}

	if buf.String() != "No snippets found.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCmd()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ui.Start(ctx); err == nil {
		t.Error("Start() should fail on a cancelled context")
	}

	if err := ui.DisplaySummary(ctx, staleSummary(m.ModeCheck, nil)); err == nil {
		t.Error("DisplaySummary() should fail on a cancelled context")
	}

	if buf.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", buf.String())
	}
}

func TestSimpleUI_OutputIsCommandStdout(t *testing.T) {
	cmd, buf := newTestCmd()

	if NewSimpleUI(cmd).Output() != buf {
		t.Error("Output() should return the command's writer")
	}
}

func TestRenderReportTable_Totals(t *testing.T) {
	output := strings.ToLower(renderReportTable(staleSummary(m.ModeCheck, nil).Reports, newPalette(&bytes.Buffer{})))

	if !strings.Contains(output, "total 2") || !strings.Contains(output, "1 in sync") {
		t.Errorf("unexpected footer:\n%s", output)
	}
}
