// Package export turns a finished report into user-facing artifacts:
// JSON and CSV documents, a rendered terminal table and an HTML chart.
// Exporters only ever see a report after every merge has completed.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/toukei-tech/toukei/pkg/stats"
)

// Format names accepted by Save and the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrUnsupportedFormat is returned for format names outside the known set.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Exporter writes a report to a stream in one concrete format.
type Exporter interface {
	Export(report *stats.Report, w io.Writer) error
}

// languageRecord is the serialized shape of one language's totals.
type languageRecord struct {
	Language  string `json:"language"`
	Files     int    `json:"files"`
	Lines     int    `json:"lines"`
	Code      int    `json:"code"`
	Comments  int    `json:"comments"`
	Blanks    int    `json:"blanks"`
	Functions int    `json:"functions"`
	Classes   int    `json:"classes"`
}

// totalsRecord is the serialized shape of the cross-language totals.
type totalsRecord struct {
	Files     int `json:"files"`
	Lines     int `json:"lines"`
	Code      int `json:"code"`
	Comments  int `json:"comments"`
	Blanks    int `json:"blanks"`
	Functions int `json:"functions"`
	Classes   int `json:"classes"`
}

// document is the full exported payload.
type document struct {
	Languages []languageRecord `json:"languages"`
	Total     totalsRecord     `json:"total"`
}

func buildDocument(report *stats.Report) document {
	sorted := report.Sorted(stats.ByLinesDesc)
	doc := document{Languages: make([]languageRecord, 0, len(sorted))}

	for _, ls := range sorted {
		doc.Languages = append(doc.Languages, languageRecord{
			Language:  ls.Language,
			Files:     ls.Files,
			Lines:     ls.Lines,
			Code:      ls.Code,
			Comments:  ls.Comments,
			Blanks:    ls.Blanks,
			Functions: ls.Functions,
			Classes:   ls.Classes,
		})
	}

	total := report.Total()
	doc.Total = totalsRecord{
		Files:     total.Files,
		Lines:     total.Lines,
		Code:      total.Code,
		Comments:  total.Comments,
		Blanks:    total.Blanks,
		Functions: total.Functions,
		Classes:   total.Classes,
	}

	return doc
}

// JSONExporter writes the report as an indented JSON document with
// languages sorted by line count, largest first.
type JSONExporter struct{}

// Export implements Exporter.
func (JSONExporter) Export(report *stats.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(buildDocument(report)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

// csvHeader is the fixed column order of CSV exports.
var csvHeader = []string{"Language", "Files", "Lines", "Code", "Comments", "Blanks", "Functions", "Classes"}

// CSVExporter writes the report as CSV: a header, one row per language
// sorted by line count, and a trailing Total row.
type CSVExporter struct{}

// Export implements Exporter.
func (CSVExporter) Export(report *stats.Report, w io.Writer) error {
	doc := buildDocument(report)

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range doc.Languages {
		row := []string{
			rec.Language,
			strconv.Itoa(rec.Files),
			strconv.Itoa(rec.Lines),
			strconv.Itoa(rec.Code),
			strconv.Itoa(rec.Comments),
			strconv.Itoa(rec.Blanks),
			strconv.Itoa(rec.Functions),
			strconv.Itoa(rec.Classes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	totalRow := []string{
		"Total",
		strconv.Itoa(doc.Total.Files),
		strconv.Itoa(doc.Total.Lines),
		strconv.Itoa(doc.Total.Code),
		strconv.Itoa(doc.Total.Comments),
		strconv.Itoa(doc.Total.Blanks),
		strconv.Itoa(doc.Total.Functions),
		strconv.Itoa(doc.Total.Classes),
	}
	if err := cw.Write(totalRow); err != nil {
		return fmt.Errorf("write csv total: %w", err)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// Save writes a report to path in the named format.
func Save(report *stats.Report, path, format string) error {
	exporter, err := ForFormat(format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.Export(report, file); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	return nil
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case FormatJSON:
		return JSONExporter{}, nil
	case FormatCSV:
		return CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
