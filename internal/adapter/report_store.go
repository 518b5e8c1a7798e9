package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Format selects how a run summary is rendered.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", m.ErrConfiguration, value)
}

// IsMachine reports whether the format is meant for tools rather than people.
func (f Format) IsMachine() bool {
	return f == FormatJSON || f == FormatYAML
}

// ReportStore encodes run summaries in machine-readable form and persists them.
type ReportStore interface {
	Encode(ctx context.Context, w io.Writer, format Format, summary m.Summary) error
	SaveReport(ctx context.Context, path m.Path, format Format, summary m.Summary) error
	LoadReport(ctx context.Context, path m.Path) (m.Summary, error)
}

type reportStore struct {
	fs SourceFSAdapter
}

// NewReportStore creates a ReportStore writing report files through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// Encode writes summary to w as JSON or YAML.
func (r *reportStore) Encode(ctx context.Context, w io.Writer, format Format, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}

		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}

		return encoder.Close()
	case FormatText:
		return fmt.Errorf("%w: text is not a machine-readable report format", m.ErrConfiguration)
	}

	return fmt.Errorf("%w: unknown output format %q", m.ErrConfiguration, format)
}

// SaveReport encodes summary and atomically writes it to path. Text format
// falls back to JSON for report files.
func (r *reportStore) SaveReport(ctx context.Context, path m.Path, format Format, summary m.Summary) error {
	if !format.IsMachine() {
		format = FormatJSON
	}

	var buf bytes.Buffer
	if err := r.Encode(ctx, &buf, format, summary); err != nil {
		return err
	}

	if err := r.fs.WriteFileAtomic(ctx, path, buf.Bytes()); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func (r *reportStore) LoadReport(ctx context.Context, p m.Path) (m.Summary, error) {
	data, err := r.fs.ReadFile(ctx, p)
	if err != nil {
		return m.Summary{}, err
	}

	var summary m.Summary

	switch strings.ToLower(path.Ext(string(p))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &summary)
	default:
		err = json.Unmarshal(data, &summary)
	}

	if err != nil {
		return m.Summary{}, fmt.Errorf("%w: decode report %s: %w", m.ErrIO, p, err)
	}

	return summary, nil
}
