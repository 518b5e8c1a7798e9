package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmi3/freshreadme/internal/adapter"
	"github.com/dmi3/freshreadme/internal/controller"
	m "github.com/dmi3/freshreadme/internal/model"
)

// SyncArgs contains the arguments shared by every sync command.
type SyncArgs struct {
	Source     adapter.FileFilter
	Docs       adapter.FileFilter
	Tag        string
	Anchor     string
	Threads    int
	Format     string
	ReportFile m.Path
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
	Format string
}

// Workflow runs the user-facing operations of the tool.
type Workflow interface {
	Check(ctx context.Context, args SyncArgs) (m.Summary, error)
	Update(ctx context.Context, args SyncArgs) (m.Summary, error)
	List(ctx context.Context, args SyncArgs) (m.Summary, error)
	View(ctx context.Context, args ViewArgs) (m.Summary, error)
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		ReportStore:  reportStore,
		UI:           ui,
		Orchestrator: orchestrator,
	}
}

// Check reports every divergence and writes nothing.
func (w *workflow) Check(ctx context.Context, args SyncArgs) (m.Summary, error) {
	return w.run(ctx, m.ModeCheck, args)
}

// Update rewrites stale documentation regions, then reports what is left.
func (w *workflow) Update(ctx context.Context, args SyncArgs) (m.Summary, error) {
	return w.run(ctx, m.ModeUpdate, args)
}

// List indexes every id with its source and documentation locations.
func (w *workflow) List(ctx context.Context, args SyncArgs) (m.Summary, error) {
	return w.run(ctx, m.ModeList, args)
}

// View loads a report saved by an earlier run and displays it again.
func (w *workflow) View(ctx context.Context, args ViewArgs) (m.Summary, error) {
	if args.Report == "" {
		return m.Summary{}, fmt.Errorf("%w: no report file given", m.ErrConfiguration)
	}

	format, err := adapter.ParseFormat(args.Format)
	if err != nil {
		return m.Summary{}, err
	}

	summary, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return m.Summary{}, fmt.Errorf("load report: %w", err)
	}

	if err := w.present(ctx, format, summary); err != nil {
		return summary, err
	}

	return summary, nil
}

func (w *workflow) run(ctx context.Context, mode m.Mode, args SyncArgs) (m.Summary, error) {
	cfg, format, err := compileArgs(args)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return m.Summary{}, err
	}

	slog.Info("Starting run", "mode", mode, "source_root", args.Source.Root, "docs_root", args.Docs.Root, "threads", cfg.Threads)

	inv, err := w.Scan(ctx, cfg)
	if err != nil {
		return m.Summary{}, fmt.Errorf("scan: %w", err)
	}

	reports := w.Reconcile(ctx, inv)
	if err := ctx.Err(); err != nil {
		return m.Summary{}, err
	}

	var repaired []m.Repair

	if mode == m.ModeUpdate {
		repaired, err = w.Repair(ctx, inv, reports)
		if err != nil {
			slog.Error("Repair failed", "repaired", len(repaired), "error", err)
			return m.NewSummary(mode, reports, repaired), fmt.Errorf("repair: %w", err)
		}
	}

	summary := m.NewSummary(mode, reports, repaired)

	slog.Info("Run finished", "mode", mode, "outcome", summary.Outcome, "reports", len(reports), "repaired", len(repaired))

	if err := w.present(ctx, format, summary); err != nil {
		return summary, err
	}

	if args.ReportFile != "" {
		if err := w.SaveReport(ctx, args.ReportFile, format, summary); err != nil {
			slog.Error("Failed to save report", "path", args.ReportFile, "error", err)
			return summary, err
		}
	}

	return summary, nil
}

func (w *workflow) present(ctx context.Context, format adapter.Format, summary m.Summary) error {
	if format.IsMachine() {
		if err := w.Encode(ctx, w.Output(), format, summary); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		return nil
	}

	mode := controller.WithReportMode()
	if summary.Mode == m.ModeList {
		mode = controller.WithListMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	var err error
	if summary.Mode == m.ModeList {
		err = w.DisplayList(ctx, summary.Reports)
	} else {
		err = w.DisplaySummary(ctx, summary)
	}

	if err != nil {
		slog.Error("Failed to display results", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func compileArgs(args SyncArgs) (SyncConfig, adapter.Format, error) {
	if args.Threads < 0 {
		return SyncConfig{}, "", fmt.Errorf("%w: parallelism must be positive, got %d", m.ErrConfiguration, args.Threads)
	}

	format, err := adapter.ParseFormat(args.Format)
	if err != nil {
		return SyncConfig{}, "", err
	}

	if err := args.Source.Validate(); err != nil {
		return SyncConfig{}, "", err
	}

	if err := args.Docs.Validate(); err != nil {
		return SyncConfig{}, "", err
	}

	tag := args.Tag
	if tag == "" {
		tag = DefaultMarkerTag
	}

	markers, err := NewMarkerPattern(tag)
	if err != nil {
		return SyncConfig{}, "", err
	}

	anchors, err := NewAnchorStrategy(args.Anchor, markers.Tag())
	if err != nil {
		return SyncConfig{}, "", err
	}

	return SyncConfig{
		Source:  args.Source,
		Docs:    args.Docs,
		Markers: markers,
		Anchors: anchors,
		Threads: normalizeThreads(args.Threads),
	}, format, nil
}
