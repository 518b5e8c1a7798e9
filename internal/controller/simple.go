package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/dmi3/freshreadme/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// Output returns the command's stdout.
func (s *SimpleUI) Output() io.Writer {
	return s.cmd.OutOrStdout()
}

// DisplaySummary prints the report table followed by diffs, problems and repairs.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSummary(summary, newPalette(s.Output())))

	return nil
}

// DisplayList prints the snippet index.
func (s *SimpleUI) DisplayList(ctx context.Context, reports []m.DivergenceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderList(reports, newPalette(s.Output())))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// palette colours statuses. The renderer downgrades to plain text when the
// writer is not a colour terminal.
type palette struct {
	ok      lipgloss.Style
	drift   lipgloss.Style
	broken  lipgloss.Style
	heading lipgloss.Style
	faint   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		drift:   r.NewStyle().Foreground(lipgloss.Color("3")),
		broken:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		heading: r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

func (p palette) status(status m.Status) string {
	switch {
	case status == m.StatusInSync:
		return p.ok.Render(status.String())
	case status.IsStructural():
		return p.broken.Render(status.String())
	}

	return p.drift.Render(status.String())
}

func renderSummary(summary m.Summary, p palette) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderReportTable(summary.Reports, p))

	unresolved := summary.Unresolved()

	for _, report := range unresolved {
		writeDetails(&b, report, p)
	}

	if len(summary.Repaired) > 0 {
		b.WriteString("\n")
		b.WriteString(p.heading.Render(fmt.Sprintf("Updated %d region(s):", len(summary.Repaired))))
		b.WriteString("\n")

		for _, repair := range summary.Repaired {
			fmt.Fprintf(&b, "  %s:%d  %s\n", repair.Path, repair.Line, repair.ID)
		}
	}

	b.WriteString("\n")
	b.WriteString(renderOutcome(summary.Outcome, unresolved, p))
	b.WriteString("\n")

	return b.String()
}

func writeDetails(b *strings.Builder, report m.DivergenceReport, p palette) {
	b.WriteString("\n")
	b.WriteString(p.heading.Render(string(report.ID)))
	b.WriteString(" ")
	b.WriteString(p.status(report.Status))
	b.WriteString("\n")

	for _, problem := range report.Problems {
		fmt.Fprintf(b, "  %s\n", problem.Error())
	}

	switch report.Status {
	case m.StatusMissingInDocs:
		fmt.Fprintf(b, "  defined at %s but shown in no documentation file\n", formatSource(report.Source))
	case m.StatusMissingInSource:
		for _, doc := range report.Docs {
			fmt.Fprintf(b, "  shown at %s:%d but defined in no source file\n", doc.Location.Path, doc.Location.Line)
		}
	case m.StatusStale:
		for _, doc := range report.Docs {
			if doc.InSync {
				continue
			}

			b.WriteString(p.faint.Render(fmt.Sprintf("  %s:%d", doc.Location.Path, doc.Location.Line)))
			b.WriteString("\n")
			b.WriteString(doc.Diff)
		}
	}
}

func renderOutcome(outcome m.Outcome, unresolved []m.DivergenceReport, p palette) string {
	if outcome == m.OutcomeInSync {
		return p.ok.Render("All snippets are in sync.")
	}

	ids := make([]string, 0, len(unresolved))
	for _, report := range unresolved {
		ids = append(ids, string(report.ID))
	}

	message := fmt.Sprintf("%d snippet(s) need attention: %s", len(ids), strings.Join(ids, ", "))
	if outcome == m.OutcomeStructural {
		return p.broken.Render(message)
	}

	return p.drift.Render(message)
}

func renderReportTable(reports []m.DivergenceReport, p palette) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Snippet", "Status", "Source", "Docs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	inSync := 0

	for _, report := range reports {
		if report.Status == m.StatusInSync {
			inSync++
		}

		table.Append([]string{
			string(report.ID),
			p.status(report.Status),
			formatSource(report.Source),
			fmt.Sprintf("%d", len(report.Docs)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		fmt.Sprintf("%d in sync", inSync),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderList(reports []m.DivergenceReport, p palette) string {
	if len(reports) == 0 {
		return "No snippets found.\n"
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Snippet", "Source", "Documented In", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, report := range reports {
		docs := make([]string, 0, len(report.Docs))
		for _, doc := range report.Docs {
			docs = append(docs, fmt.Sprintf("%s:%d", doc.Location.Path, doc.Location.Line))
		}

		documented := strings.Join(docs, "\n")
		if documented == "" {
			documented = "-"
		}

		table.Append([]string{string(report.ID), formatSource(report.Source), documented, p.status(report.Status)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func formatSource(loc *m.Location) string {
	if loc == nil {
		return "-"
	}

	return fmt.Sprintf("%s:%d", loc.Path, loc.Line)
}
