package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dmi3/freshreadme/internal/adapter"
	m "github.com/dmi3/freshreadme/internal/model"
)

// SyncConfig is the compiled configuration of one run.
type SyncConfig struct {
	Source  adapter.FileFilter
	Docs    adapter.FileFilter
	Markers *MarkerPattern
	Anchors AnchorStrategy
	Threads int
}

// Orchestrator drives the scan, reconcile and repair phases over a tree.
type Orchestrator interface {
	Scan(ctx context.Context, cfg SyncConfig) (*Inventory, error)
	Reconcile(ctx context.Context, inv *Inventory) []m.DivergenceReport
	Repair(ctx context.Context, inv *Inventory, reports []m.DivergenceReport) ([]m.Repair, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewOrchestrator constructs an Orchestrator reading and writing through fsAdapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter) Orchestrator {
	return &orchestrator{fsAdapter: fsAdapter}
}

type fileKind int

const (
	sourceFile fileKind = iota
	docFile
)

type fileResult struct {
	path   m.Path
	kind   fileKind
	scan   ScanResult
	locate LocateResult
}

// Scan lists both trees and scans every file on a bounded worker pool.
// Per-file results are merged by a single aggregator; an unreadable file
// aborts the run.
func (o *orchestrator) Scan(ctx context.Context, cfg SyncConfig) (*Inventory, error) {
	threads := normalizeThreads(cfg.Threads)

	sources, docs, err := o.listFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Debug("Scanning files", "sources", len(sources), "docs", len(docs), "threads", threads)

	results := make(chan fileResult, threads)
	merged := make(chan *Inventory, 1)

	go func() {
		inv := newInventory()
		for result := range results {
			inv.merge(result)
		}

		merged <- inv
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	dispatch := func(path m.Path, kind fileKind) {
		group.Go(func() error {
			result, err := o.processFile(groupCtx, cfg, path, kind)
			if err != nil {
				return err
			}

			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case results <- result:
				return nil
			}
		})
	}

	for _, path := range sources {
		dispatch(path, sourceFile)
	}

	for _, path := range docs {
		dispatch(path, docFile)
	}

	err = group.Wait()

	close(results)

	inv := <-merged

	if err != nil {
		slog.Error("Scan aborted", "error", err)
		return nil, err
	}

	if err := o.resolveIncludes(ctx, inv); err != nil {
		return nil, err
	}

	inv.sortEntries()

	return inv, nil
}

func (o *orchestrator) listFiles(ctx context.Context, cfg SyncConfig) ([]m.Path, []m.Path, error) {
	sources, err := o.fsAdapter.List(ctx, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("list source files: %w", err)
	}

	docs, err := o.fsAdapter.List(ctx, cfg.Docs)
	if err != nil {
		return nil, nil, fmt.Errorf("list documentation files: %w", err)
	}

	isDoc := make(map[m.Path]bool, len(docs))
	for _, path := range docs {
		isDoc[path] = true
	}

	for _, path := range sources {
		if isDoc[path] {
			return nil, nil, fmt.Errorf("%w: %s is matched by both the source and the documentation filters", m.ErrConfiguration, path)
		}
	}

	return sources, docs, nil
}

func (o *orchestrator) processFile(ctx context.Context, cfg SyncConfig, path m.Path, kind fileKind) (fileResult, error) {
	data, err := o.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read file", "path", path, "error", err)
		return fileResult{}, err
	}

	result := fileResult{path: path, kind: kind}

	switch kind {
	case sourceFile:
		result.scan = ScanSource(path, string(data), cfg.Markers)
	case docFile:
		result.locate = LocateDocs(path, string(data), cfg.Anchors)
	}

	return result, nil
}

// resolveIncludes reads the files referenced by whole-file include anchors.
// A file that does not exist leaves the id missing in source; a file that
// cannot be read is a problem of that id only.
func (o *orchestrator) resolveIncludes(ctx context.Context, inv *Inventory) error {
	for _, id := range inv.ids() {
		if !id.IsFileInclude() || inv.sources[id] != nil {
			continue
		}

		path := id.IncludedPath()

		exists, err := o.fsAdapter.Exists(ctx, path)
		if err != nil {
			if IsCancellation(err) {
				return err
			}

			inv.addProblems([]m.StructuralError{unreadableInclude(id, inv.docs[id], err)})

			continue
		}

		if !exists {
			slog.Warn("Included file does not exist", "path", path)
			continue
		}

		data, err := o.fsAdapter.ReadFile(ctx, path)
		if err != nil {
			if IsCancellation(err) {
				return err
			}

			inv.addProblems([]m.StructuralError{unreadableInclude(id, inv.docs[id], err)})

			continue
		}

		lines := SplitLines(string(data))
		inv.sources[id] = &m.SourceSnippet{ID: id, Path: path, StartLine: 1, EndLine: len(lines), Lines: lines}
	}

	return nil
}

// unreadableInclude reports an include anchor at the first region showing id.
func unreadableInclude(id m.SnippetID, docs []m.DocSnippet, err error) m.StructuralError {
	slog.Warn("Included file cannot be read", "id", id, "error", err)

	problem := m.StructuralError{
		Kind:    m.KindMalformed,
		ID:      id,
		Message: fmt.Sprintf("included file %s is outside the root or unreadable: %v", id.IncludedPath(), err),
	}

	if len(docs) > 0 {
		problem.Path = docs[0].Path
		problem.Line = docs[0].AnchorLine
	}

	return problem
}

// Reconcile runs the diff engine over the union of ids, sorted by id.
func (o *orchestrator) Reconcile(ctx context.Context, inv *Inventory) []m.DivergenceReport {
	ids := inv.ids()
	reports := make([]m.DivergenceReport, 0, len(ids))

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		source := inv.sources[id]
		docs := inv.docs[id]

		if source != nil {
			warnOnSourceRef(source, docs)
		}

		reports = append(reports, Decide(id, source, docs, inv.problems[id]))
	}

	return reports
}

// Repair rewrites every stale documentation region. Regions of one file are
// applied in a single pass and the file is replaced atomically.
func (o *orchestrator) Repair(ctx context.Context, inv *Inventory, reports []m.DivergenceReport) ([]m.Repair, error) {
	pending := map[m.Path][]m.DocSnippet{}

	for _, report := range reports {
		if report.Status != m.StatusStale {
			continue
		}

		source := inv.sources[report.ID]
		if source == nil {
			continue
		}

		want := Normalize(source.Text())

		for _, doc := range inv.docs[report.ID] {
			if Normalize(doc.Text) != want {
				pending[doc.Path] = append(pending[doc.Path], doc)
			}
		}
	}

	paths := make([]m.Path, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	var repaired []m.Repair

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}

		done, err := o.rewriteFile(ctx, inv, path, pending[path])
		if err != nil {
			return repaired, err
		}

		repaired = append(repaired, done...)
	}

	return repaired, nil
}

// rewriteFile re-reads path, checks every region still holds the text seen
// during the scan and replaces them all in one write.
func (o *orchestrator) rewriteFile(ctx context.Context, inv *Inventory, path m.Path, docs []m.DocSnippet) ([]m.Repair, error) {
	data, err := o.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	text := string(data)
	newline := DetectNewline(text)
	edits := make([]Edit, 0, len(docs))
	repaired := make([]m.Repair, 0, len(docs))

	for _, doc := range docs {
		if doc.EndOffset > len(text) || doc.Fence.CloseEnd > len(text) || text[doc.StartOffset:doc.EndOffset] != doc.Text {
			return nil, fmt.Errorf("%w: %s changed while syncing snippet %s", m.ErrIO, path, doc.ID)
		}

		rendered := RenderReplacement(inv.sources[doc.ID].Lines, doc.Indent, newline)
		edits = append(edits, RegionEdit(text, doc, rendered))
		repaired = append(repaired, m.Repair{ID: doc.ID, Path: path, Line: doc.AnchorLine})
	}

	updated, err := ApplyEdits(text, edits)
	if err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", path, err)
	}

	if updated == text {
		return nil, nil
	}

	if err := o.fsAdapter.WriteFileAtomic(ctx, path, []byte(updated)); err != nil {
		slog.Error("Failed to rewrite documentation", "path", path, "error", err)
		return nil, err
	}

	slog.Info("Rewrote documentation", "path", path, "regions", len(edits))

	sort.Slice(repaired, func(i, j int) bool { return repaired[i].Line < repaired[j].Line })

	return repaired, nil
}

func warnOnSourceRef(source *m.SourceSnippet, docs []m.DocSnippet) {
	for _, doc := range docs {
		if doc.SourceRef != "" && !doc.ID.IsFileInclude() && doc.SourceRef != source.Path {
			slog.Warn("Anchor names a different source file than the one defining the snippet",
				"id", doc.ID, "anchor", doc.SourceRef, "source", source.Path)
		}
	}
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}

	return threads
}

// IsCancellation reports whether err comes from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
