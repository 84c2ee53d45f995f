package export

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/toukei-tech/toukei/pkg/stats"
)

// Renderer writes a human-readable summary table.
type Renderer struct {
	// IgnoreBlanks drops the Blanks column from the output.
	IgnoreBlanks bool
	// IgnoreComments drops the Comments column from the output.
	IgnoreComments bool
	// NoColor disables ANSI-colored headers.
	NoColor bool
}

// Render writes the report as a table, languages sorted by line count
// with a Total footer.
func (r Renderer) Render(report *stats.Report, w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := r.header()
	tw.AppendHeader(toRow(header))

	for _, ls := range report.Sorted(stats.ByLinesDesc) {
		tw.AppendRow(toRow(r.values(ls)))
	}

	total := report.Total()
	tw.AppendFooter(toRow(r.values(&total)))

	tw.Render()
}

func (r Renderer) header() []string {
	heading := func(s string) string {
		if r.NoColor {
			return s
		}

		return color.New(color.FgCyan, color.Bold).Sprint(s)
	}

	columns := []string{heading("Language"), heading("Files"), heading("Lines"), heading("Code")}

	if !r.IgnoreComments {
		columns = append(columns, heading("Comments"))
	}

	if !r.IgnoreBlanks {
		columns = append(columns, heading("Blanks"))
	}

	return append(columns, heading("Functions"), heading("Classes"))
}

func (r Renderer) values(ls *stats.LangStat) []string {
	n := func(v int) string { return humanize.Comma(int64(v)) }

	columns := []string{ls.Language, n(ls.Files), n(ls.Lines), n(ls.Code)}

	if !r.IgnoreComments {
		columns = append(columns, n(ls.Comments))
	}

	if !r.IgnoreBlanks {
		columns = append(columns, n(ls.Blanks))
	}

	return append(columns, n(ls.Functions), n(ls.Classes))
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}

	return row
}
