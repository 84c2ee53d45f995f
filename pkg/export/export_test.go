package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toukei-tech/toukei/pkg/stats"
)

func sampleReport() *stats.Report {
	report := stats.NewReport()

	report.Add(stats.FileStat{
		Language: "Go", Path: "a.go", Name: "a.go",
		Lines: 100, Code: 70, Comments: 20, Blanks: 10, Functions: 30, Classes: 2,
	})
	report.Add(stats.FileStat{
		Language: "Go", Path: "b.go", Name: "b.go",
		Lines: 50, Code: 40, Comments: 5, Blanks: 5, Functions: 12, Classes: 1,
	})
	report.Add(stats.FileStat{
		Language: "Python", Path: "c.py", Name: "c.py",
		Lines: 200, Code: 150, Comments: 30, Blanks: 20, Functions: 60, Classes: 4,
	})

	return report
}

func TestJSONExporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, JSONExporter{}.Export(sampleReport(), &buf))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Languages, 2)
	// Largest line count first.
	assert.Equal(t, "Python", doc.Languages[0].Language)
	assert.Equal(t, 200, doc.Languages[0].Lines)
	assert.Equal(t, "Go", doc.Languages[1].Language)
	assert.Equal(t, 2, doc.Languages[1].Files)
	assert.Equal(t, 150, doc.Languages[1].Lines)

	assert.Equal(t, 3, doc.Total.Files)
	assert.Equal(t, 350, doc.Total.Lines)
	assert.Equal(t, 260, doc.Total.Code)
	assert.Equal(t, 102, doc.Total.Functions)
	assert.Equal(t, 7, doc.Total.Classes)
}

func TestCSVExporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, CSVExporter{}.Export(sampleReport(), &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"Python", "1", "200", "150", "30", "20", "60", "4"}, rows[1])
	assert.Equal(t, []string{"Go", "2", "150", "110", "25", "15", "42", "3"}, rows[2])
	assert.Equal(t, []string{"Total", "3", "350", "260", "55", "35", "102", "7"}, rows[3])
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name   string
		format string
	}{
		{name: "json", format: FormatJSON},
		{name: "csv", format: FormatCSV},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, "out."+tc.format)
			require.NoError(t, Save(sampleReport(), path, tc.format))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := Save(sampleReport(), filepath.Join(t.TempDir(), "out.xml"), "xml")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	_, err := ForFormat(FormatJSON)
	assert.NoError(t, err)

	_, err = ForFormat(FormatCSV)
	assert.NoError(t, err)

	_, err = ForFormat("yaml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderer_FullTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Renderer{NoColor: true}.Render(sampleReport(), &buf)

	out := buf.String()

	assert.Contains(t, out, "Language")
	assert.Contains(t, out, "Comments")
	assert.Contains(t, out, "Blanks")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Total")
	// Python (200 lines) sorts above Go.
	assert.Less(t, strings.Index(out, "Python"), strings.Index(out, "Go"))
}

func TestRenderer_ColumnSuppression(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Renderer{IgnoreBlanks: true, IgnoreComments: true, NoColor: true}.Render(sampleReport(), &buf)

	out := buf.String()

	assert.NotContains(t, out, "Comments")
	assert.NotContains(t, out, "Blanks")
	assert.Contains(t, out, "Functions")
}

func TestSaveChart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, SaveChart(sampleReport(), path, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "Code Distribution by Language")
	assert.Contains(t, html, "Python")
}

func TestNewPieChart_FoldsTail(t *testing.T) {
	t.Parallel()

	report := stats.NewReport()
	languages := []string{"Go", "Python", "Rust", "Java"}

	for i, name := range languages {
		report.Add(stats.FileStat{Language: name, Lines: 10 * (i + 1)})
	}

	pie := NewPieChart(report, 2)

	require.Len(t, pie.MultiSeries, 1)

	data, ok := pie.MultiSeries[0].Data.([]opts.PieData)
	require.True(t, ok)
	require.Len(t, data, 3)
	assert.Equal(t, "Java", data[0].Name)
	assert.Equal(t, "Rust", data[1].Name)
	assert.Equal(t, "Other", data[2].Name)
	assert.Equal(t, 30, data[2].Value)
}
