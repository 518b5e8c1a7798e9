package domain

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Decide compares the source side of an id with every documented copy and
// returns the report for the id. Structural problems win over any textual
// comparison.
func Decide(id m.SnippetID, source *m.SourceSnippet, docs []m.DocSnippet, problems []m.StructuralError) m.DivergenceReport {
	report := m.DivergenceReport{ID: id, Problems: problems}

	if source != nil {
		loc := source.Location()
		report.Source = &loc
		report.SourceText = source.Text()
	}

	docs = sortedDocs(docs)
	want := ""

	if source != nil {
		want = Normalize(report.SourceText)
	}

	stale := false

	for _, doc := range docs {
		divergence := m.DocDivergence{
			Location: m.DocLocation{
				Path:        doc.Path,
				Line:        doc.AnchorLine,
				StartOffset: doc.StartOffset,
				EndOffset:   doc.EndOffset,
			},
			Text: doc.Text,
		}

		if source != nil {
			got := Normalize(doc.Text)
			divergence.InSync = got == want

			if !divergence.InSync {
				stale = true
				divergence.Diff = UnifiedDiff(got, want, string(doc.Path), string(source.Path))
			}
		}

		report.Docs = append(report.Docs, divergence)
	}

	switch {
	case len(problems) > 0:
		report.Status = structuralStatus(problems)
	case source == nil:
		report.Status = m.StatusMissingInSource
	case len(docs) == 0:
		report.Status = m.StatusMissingInDocs
	case stale:
		report.Status = m.StatusStale
	default:
		report.Status = m.StatusInSync
	}

	return report
}

// UnifiedDiff renders a unified diff turning the documented text into the
// source text.
func UnifiedDiff(doc, source, docName, sourceName string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(doc),
		B:        difflib.SplitLines(source),
		FromFile: docName,
		ToFile:   sourceName,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("diff unavailable: %v", err)
	}

	return text
}

func structuralStatus(problems []m.StructuralError) m.Status {
	status := problems[0].Status()

	for _, problem := range problems[1:] {
		if rank(problem.Status()) < rank(status) {
			status = problem.Status()
		}
	}

	return status
}

func rank(status m.Status) int {
	switch status {
	case m.StatusDuplicateID:
		return 0
	case m.StatusUnterminated:
		return 1
	}

	return 2
}

func sortedDocs(docs []m.DocSnippet) []m.DocSnippet {
	out := make([]m.DocSnippet, len(docs))
	copy(out, docs)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}

		return out[i].StartOffset < out[j].StartOffset
	})

	return out
}
