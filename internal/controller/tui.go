package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Lines taken by the pager header and footer.
const pagerChrome = 4

// TUI implements UI for terminals. Short output is printed as is; output
// taller than the terminal opens a scrollable pager.
type TUI struct {
	output   io.Writer
	mode     StartMode
	content  string
	footer   string // printed again once the pager closes
	width    int
	height   int
	runPager func(ctx context.Context, model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.runPager = t.runProgram

	return t
}

// Start records the mode and reads the terminal size.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	t.mode = cfg.mode
	t.content = ""
	t.footer = ""

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	return nil
}

// Close drops the buffered content.
func (t *TUI) Close(_ context.Context) {
	t.content = ""
	t.footer = ""
}

// Output returns the terminal writer.
func (t *TUI) Output() io.Writer {
	return t.output
}

// DisplaySummary buffers the rendered report until Wait.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := newPalette(t.output)
	t.content = renderSummary(summary, p)
	t.footer = renderOutcome(summary.Outcome, summary.Unresolved(), p) + "\n"

	return nil
}

// DisplayList buffers the rendered snippet index until Wait.
func (t *TUI) DisplayList(ctx context.Context, reports []m.DivergenceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.content = renderList(reports, newPalette(t.output))

	return nil
}

// Wait shows the buffered content and, when a pager is needed, blocks until
// the user quits it. The alternate screen is cleared on exit, so the outcome
// line is printed again afterwards.
func (t *TUI) Wait(ctx context.Context) {
	if t.content == "" {
		return
	}

	if !t.needsPagination() {
		_, _ = fmt.Fprint(t.output, t.content)
		return
	}

	model := newPagerModel(t.title(), t.content, t.width, t.height, newPalette(t.output))

	if err := t.runPager(ctx, model); err != nil {
		slog.Warn("Pager exited, printing report instead", "error", err)
		_, _ = fmt.Fprint(t.output, t.content)

		return
	}

	_, _ = fmt.Fprint(t.output, t.footer)
}

func (t *TUI) runProgram(ctx context.Context, model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()

	return err
}

func (t *TUI) needsPagination() bool {
	if t.height <= 0 {
		return false
	}

	return strings.Count(t.content, "\n") > t.height-pagerChrome
}

func (t *TUI) title() string {
	if t.mode == ModeList {
		return "freshreadme: snippet index"
	}

	return "freshreadme: snippet report"
}

// pagerModel is the Bubble Tea model scrolling a rendered report.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
	palette  palette
}

func newPagerModel(title, content string, width, height int, p palette) pagerModel {
	model := pagerModel{
		title:   title,
		content: content,
		palette: p,
	}

	if width > 0 && height > 0 {
		model = model.resize(width, height)
	}

	return model
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit

		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil

		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) resize(width, height int) pagerModel {
	bodyHeight := height - pagerChrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !pm.ready {
		pm.viewport = viewport.New(width, bodyHeight)
		pm.viewport.SetContent(pm.content)
		pm.ready = true

		return pm
	}

	pm.viewport.Width = width
	pm.viewport.Height = bodyHeight

	return pm
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "loading...\n"
	}

	var b strings.Builder

	b.WriteString(pm.palette.heading.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(pm.palette.faint.Render(fmt.Sprintf(
		"%3.f%%  ↑/↓ scroll  pgup/pgdn page  g/G top/bottom  q quit",
		pm.viewport.ScrollPercent()*100,
	)))

	return b.String()
}
