package domain

import (
	"fmt"
	"sort"

	m "github.com/dmi3/freshreadme/internal/model"
)

// Inventory is everything a scan found, keyed by snippet id. It is built by
// a single goroutine and read-only afterwards.
type Inventory struct {
	sources  map[m.SnippetID]*m.SourceSnippet
	docs     map[m.SnippetID][]m.DocSnippet
	problems map[m.SnippetID][]m.StructuralError
}

func newInventory() *Inventory {
	return &Inventory{
		sources:  map[m.SnippetID]*m.SourceSnippet{},
		docs:     map[m.SnippetID][]m.DocSnippet{},
		problems: map[m.SnippetID][]m.StructuralError{},
	}
}

// Source returns the source snippet defining id, if any.
func (inv *Inventory) Source(id m.SnippetID) (m.SourceSnippet, bool) {
	source, ok := inv.sources[id]
	if !ok || source == nil {
		return m.SourceSnippet{}, false
	}

	return *source, true
}

// Docs returns every documentation region showing id.
func (inv *Inventory) Docs(id m.SnippetID) []m.DocSnippet {
	return inv.docs[id]
}

// IDs returns the sorted union of ids seen in either tree.
func (inv *Inventory) IDs() []m.SnippetID {
	return inv.ids()
}

func (inv *Inventory) merge(result fileResult) {
	switch result.kind {
	case sourceFile:
		for i := range result.scan.Snippets {
			inv.addSource(result.scan.Snippets[i])
		}

		inv.addProblems(result.scan.Problems)
	case docFile:
		for _, doc := range result.locate.Snippets {
			inv.docs[doc.ID] = append(inv.docs[doc.ID], doc)
		}

		inv.addProblems(result.locate.Problems)
	}
}

// addSource keeps the snippet from the lexicographically smaller path when
// two files define the same id, so the outcome does not depend on worker order.
func (inv *Inventory) addSource(snippet m.SourceSnippet) {
	existing, ok := inv.sources[snippet.ID]
	if !ok {
		inv.sources[snippet.ID] = &snippet
		return
	}

	kept, dropped := *existing, snippet
	if snippet.Path < existing.Path {
		kept, dropped = snippet, *existing
	}

	inv.sources[snippet.ID] = &kept
	inv.problems[snippet.ID] = append(inv.problems[snippet.ID], m.StructuralError{
		Kind:    m.KindDuplicateID,
		ID:      snippet.ID,
		Path:    dropped.Path,
		Line:    dropped.StartLine,
		Message: fmt.Sprintf("snippet %q appears a second time (first defined at %s:%d)", snippet.ID, kept.Path, kept.StartLine),
	})
}

func (inv *Inventory) addProblems(problems []m.StructuralError) {
	for _, problem := range problems {
		inv.problems[problem.ID] = append(inv.problems[problem.ID], problem)
	}
}

func (inv *Inventory) ids() []m.SnippetID {
	seen := map[m.SnippetID]struct{}{}

	for id := range inv.sources {
		seen[id] = struct{}{}
	}

	for id := range inv.docs {
		seen[id] = struct{}{}
	}

	for id := range inv.problems {
		seen[id] = struct{}{}
	}

	ids := make([]m.SnippetID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (inv *Inventory) sortEntries() {
	for _, problems := range inv.problems {
		sort.SliceStable(problems, func(i, j int) bool {
			if problems[i].Path != problems[j].Path {
				return problems[i].Path < problems[j].Path
			}

			return problems[i].Line < problems[j].Line
		})
	}

	for _, docs := range inv.docs {
		sort.SliceStable(docs, func(i, j int) bool {
			if docs[i].Path != docs[j].Path {
				return docs[i].Path < docs[j].Path
			}

			return docs[i].StartOffset < docs[j].StartOffset
		})
	}
}
