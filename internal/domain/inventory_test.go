package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/dmi3/freshreadme/internal/model"
)

func sourceResult(snippets ...m.SourceSnippet) fileResult {
	return fileResult{kind: sourceFile, scan: ScanResult{Snippets: snippets}}
}

func TestInventory_DuplicateSourceKeepsSmallerPath(t *testing.T) {
	for _, order := range [][]m.Path{{"src/b.go", "src/a.go"}, {"src/a.go", "src/b.go"}} {
		inv := newInventory()
		for _, path := range order {
			inv.merge(sourceResult(m.SourceSnippet{ID: "x", Path: path, StartLine: 4, Lines: []string{string(path)}}))
		}

		source, ok := inv.Source("x")
		require.True(t, ok)
		assert.Equal(t, m.Path("src/a.go"), source.Path)

		problems := inv.problems["x"]
		require.Len(t, problems, 1)
		assert.Equal(t, m.KindDuplicateID, problems[0].Kind)
		assert.Equal(t, m.Path("src/b.go"), problems[0].Path)
		assert.Contains(t, problems[0].Message, "src/a.go:4")
	}
}

func TestInventory_IDsAreSortedUnion(t *testing.T) {
	inv := newInventory()
	inv.merge(sourceResult(m.SourceSnippet{ID: "beta", Path: "src/a.go"}))
	inv.merge(fileResult{kind: docFile, locate: LocateResult{
		Snippets: []m.DocSnippet{{ID: "alpha", Path: "README.md"}},
		Problems: []m.StructuralError{{Kind: m.KindMalformed, ID: "gamma", Path: "README.md", Line: 9}},
	}})

	assert.Equal(t, []m.SnippetID{"alpha", "beta", "gamma"}, inv.IDs())

	_, ok := inv.Source("alpha")
	assert.False(t, ok)
	assert.Len(t, inv.Docs("alpha"), 1)
	assert.Empty(t, inv.Docs("beta"))
}

func TestInventory_SortEntries(t *testing.T) {
	inv := newInventory()
	inv.merge(fileResult{kind: docFile, locate: LocateResult{Snippets: []m.DocSnippet{
		{ID: "x", Path: "docs/b.md", StartOffset: 10},
	}}})
	inv.merge(fileResult{kind: docFile, locate: LocateResult{
		Snippets: []m.DocSnippet{
			{ID: "x", Path: "docs/a.md", StartOffset: 90},
			{ID: "x", Path: "docs/a.md", StartOffset: 20},
		},
		Problems: []m.StructuralError{
			{Kind: m.KindMalformed, ID: "y", Path: "docs/a.md", Line: 7},
			{Kind: m.KindMalformed, ID: "y", Path: "docs/a.md", Line: 2},
		},
	}})

	inv.sortEntries()

	docs := inv.Docs("x")
	require.Len(t, docs, 3)
	assert.Equal(t, []int{20, 90, 10}, []int{docs[0].StartOffset, docs[1].StartOffset, docs[2].StartOffset})
	assert.Equal(t, 2, inv.problems["y"][0].Line)
}
