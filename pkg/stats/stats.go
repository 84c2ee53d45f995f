// Package stats defines the per-file and per-language statistics records
// and the report they aggregate into.
package stats

import "sort"

// FileStat is the fully populated result of lexing one file. It is
// produced by exactly one counter invocation and consumed exactly once by
// a report merge.
type FileStat struct {
	Language string `json:"language"`
	Path     string `json:"path"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`

	Lines    int `json:"lines"`
	Code     int `json:"code"`
	Comments int `json:"comments"`
	Blanks   int `json:"blanks"`

	Functions int `json:"functions"`
	Classes   int `json:"classes"`
}

// LangStat accumulates FileStats for one language. Field sums are
// commutative: the order files are added in does not affect the totals.
type LangStat struct {
	Language string `json:"language"`
	Files    int    `json:"files"`

	Lines    int `json:"lines"`
	Code     int `json:"code"`
	Comments int `json:"comments"`
	Blanks   int `json:"blanks"`

	Functions int `json:"functions"`
	Classes   int `json:"classes"`

	Stats []FileStat `json:"-"`
}

// Add folds one file into the language totals.
func (l *LangStat) Add(stat FileStat) {
	l.Files++
	l.Lines += stat.Lines
	l.Code += stat.Code
	l.Comments += stat.Comments
	l.Blanks += stat.Blanks
	l.Functions += stat.Functions
	l.Classes += stat.Classes
	l.Stats = append(l.Stats, stat)
}

// Merge folds another LangStat of the same language into this one.
func (l *LangStat) Merge(other *LangStat) {
	l.Files += other.Files
	l.Lines += other.Lines
	l.Code += other.Code
	l.Comments += other.Comments
	l.Blanks += other.Blanks
	l.Functions += other.Functions
	l.Classes += other.Classes
	l.Stats = append(l.Stats, other.Stats...)
}

// Report maps language name to its accumulated statistics. A Report is
// exclusively owned by one pipeline run while files are being merged and
// is handed to callers read-only afterwards.
type Report struct {
	Languages map[string]*LangStat
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Languages: make(map[string]*LangStat)}
}

// Add merges one file's statistics into the report.
func (r *Report) Add(stat FileStat) {
	ls, ok := r.Languages[stat.Language]
	if !ok {
		ls = &LangStat{Language: stat.Language}
		r.Languages[stat.Language] = ls
	}

	ls.Add(stat)
}

// Merge folds another report into this one. Merge is commutative and
// associative over the numeric fields, which is what makes the pipeline
// free to merge in any completion order.
func (r *Report) Merge(other *Report) {
	for name, ls := range other.Languages {
		existing, ok := r.Languages[name]
		if !ok {
			r.Languages[name] = ls

			continue
		}

		existing.Merge(ls)
	}
}

// Get returns the statistics for one language.
func (r *Report) Get(language string) (*LangStat, bool) {
	ls, ok := r.Languages[language]

	return ls, ok
}

// Sorted returns the language stats ordered by the given comparison; ties
// are broken by language name so output is deterministic.
func (r *Report) Sorted(less func(a, b *LangStat) bool) []*LangStat {
	result := make([]*LangStat, 0, len(r.Languages))
	for _, ls := range r.Languages {
		result = append(result, ls)
	}

	sort.Slice(result, func(i, j int) bool {
		if less(result[i], result[j]) {
			return true
		}

		if less(result[j], result[i]) {
			return false
		}

		return result[i].Language < result[j].Language
	})

	return result
}

// ByLinesDesc orders languages by total line count, largest first.
func ByLinesDesc(a, b *LangStat) bool { return a.Lines > b.Lines }

// Total sums every language into one LangStat. The Stats slice is left
// empty; only the numeric fields are meaningful.
func (r *Report) Total() LangStat {
	var total LangStat

	total.Language = "Total"

	for _, ls := range r.Languages {
		total.Files += ls.Files
		total.Lines += ls.Lines
		total.Code += ls.Code
		total.Comments += ls.Comments
		total.Blanks += ls.Blanks
		total.Functions += ls.Functions
		total.Classes += ls.Classes
	}

	return total
}
