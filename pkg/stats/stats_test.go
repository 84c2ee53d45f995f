package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStat(language, path string, lines int) FileStat {
	return FileStat{
		Language: language,
		Path:     path,
		Name:     path,
		Lines:    lines,
		Code:     lines - 2,
		Comments: 1,
		Blanks:   1,
	}
}

func TestLangStat_Add(t *testing.T) {
	t.Parallel()

	var ls LangStat

	ls.Add(sampleStat("Go", "a.go", 10))
	ls.Add(sampleStat("Go", "b.go", 4))

	assert.Equal(t, 2, ls.Files)
	assert.Equal(t, 14, ls.Lines)
	assert.Equal(t, 10, ls.Code)
	assert.Equal(t, 2, ls.Comments)
	assert.Equal(t, 2, ls.Blanks)
	assert.Len(t, ls.Stats, 2)
}

func TestReport_MergeCommutative(t *testing.T) {
	t.Parallel()

	files := []FileStat{
		sampleStat("Go", "a.go", 10),
		sampleStat("Go", "b.go", 4),
		sampleStat("Python", "c.py", 7),
		sampleStat("Rust", "d.rs", 3),
	}

	// Fold the same files through two different partitions; the per-language
	// totals must not depend on how the work was split.
	forward := NewReport()
	for _, f := range files {
		forward.Add(f)
	}

	left, right := NewReport(), NewReport()
	left.Add(files[3])
	left.Add(files[1])
	right.Add(files[2])
	right.Add(files[0])
	right.Merge(left)

	for name, want := range forward.Languages {
		got, ok := right.Get(name)
		require.True(t, ok, "language %q missing after merge", name)

		assert.Equal(t, want.Files, got.Files)
		assert.Equal(t, want.Lines, got.Lines)
		assert.Equal(t, want.Code, got.Code)
		assert.Equal(t, want.Comments, got.Comments)
		assert.Equal(t, want.Blanks, got.Blanks)
	}
}

func TestReport_SortedByLinesDesc(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Add(sampleStat("Python", "a.py", 5))
	report.Add(sampleStat("Go", "b.go", 20))
	report.Add(sampleStat("Rust", "c.rs", 5))

	sorted := report.Sorted(ByLinesDesc)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Go", sorted[0].Language)
	// Equal line counts fall back to name order.
	assert.Equal(t, "Python", sorted[1].Language)
	assert.Equal(t, "Rust", sorted[2].Language)
}

func TestReport_Total(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Add(sampleStat("Go", "a.go", 10))
	report.Add(sampleStat("Python", "b.py", 6))

	total := report.Total()

	assert.Equal(t, "Total", total.Language)
	assert.Equal(t, 2, total.Files)
	assert.Equal(t, 16, total.Lines)
	assert.Equal(t, 12, total.Code)
	assert.Equal(t, 2, total.Comments)
	assert.Equal(t, 2, total.Blanks)
}

func TestReport_GetMissing(t *testing.T) {
	t.Parallel()

	_, ok := NewReport().Get("COBOL")

	assert.False(t, ok)
}
