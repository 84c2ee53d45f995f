// Package bridge is the foreign-callable boundary: it accepts a
// JSON-encoded configuration payload, runs a full scan, and returns a
// JSON-encoded result. Every internal fault, panics included, is
// converted into the result's error field — nothing propagates across
// the boundary.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/pipeline"
	"github.com/toukei-tech/toukei/pkg/stats"
)

// Request is the JSON configuration payload accepted by Analyze.
type Request struct {
	Paths          []string `json:"paths"`
	Types          []string `json:"types,omitempty"`
	ExcludeFiles   []string `json:"exclude_files,omitempty"`
	IgnoreBlanks   bool     `json:"ignore_blanks,omitempty"`
	IgnoreComments bool     `json:"ignore_comments,omitempty"`
	EnableAsync    bool     `json:"enable_async,omitempty"`
	NumWorkers     int      `json:"num_workers,omitempty"`
}

// LanguageResult is one language's totals in the response payload.
type LanguageResult struct {
	Language  string `json:"language"`
	Files     int    `json:"files"`
	Lines     int    `json:"lines"`
	Code      int    `json:"code"`
	Comments  int    `json:"comments"`
	Blanks    int    `json:"blanks"`
	Functions int    `json:"functions"`
	Classes   int    `json:"classes"`
}

// Totals sums every language in the response payload.
type Totals struct {
	Files     int `json:"files"`
	Lines     int `json:"lines"`
	Code      int `json:"code"`
	Comments  int `json:"comments"`
	Blanks    int `json:"blanks"`
	Functions int `json:"functions"`
	Classes   int `json:"classes"`
}

// Response is the JSON result payload returned by Analyze.
type Response struct {
	Success   bool             `json:"success"`
	Error     string           `json:"error,omitempty"`
	Languages []LanguageResult `json:"languages"`
	Total     Totals           `json:"total"`
}

// Analyze runs one scan described by the JSON payload and returns the
// JSON result. It never returns malformed output: encoding problems and
// panics degrade to an error response.
func Analyze(payload []byte) []byte {
	return marshalResponse(analyze(payload))
}

func analyze(payload []byte) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(fmt.Sprintf("panic during analysis: %v", r))
		}
	}()

	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse(fmt.Sprintf("parse config: %v", err))
	}

	if len(req.Paths) == 0 {
		return errorResponse("at least one path is required")
	}

	mode := pipeline.ModeSync
	if req.EnableAsync {
		mode = pipeline.ModeAsync
	}

	report, err := pipeline.Run(mode, lang.NewRegistry(), pipeline.Options{
		Paths:        req.Paths,
		Types:        req.Types,
		ExcludeFiles: req.ExcludeFiles,
		Workers:      req.NumWorkers,
	})
	if err != nil {
		return errorResponse(fmt.Sprintf("scan failed: %v", err))
	}

	return successResponse(report)
}

func successResponse(report *stats.Report) Response {
	resp := Response{Success: true, Languages: []LanguageResult{}}

	for _, ls := range report.Sorted(stats.ByLinesDesc) {
		resp.Languages = append(resp.Languages, LanguageResult{
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
	resp.Total = Totals{
		Files:     total.Files,
		Lines:     total.Lines,
		Code:      total.Code,
		Comments:  total.Comments,
		Blanks:    total.Blanks,
		Functions: total.Functions,
		Classes:   total.Classes,
	}

	return resp
}

func errorResponse(msg string) Response {
	return Response{Success: false, Error: msg, Languages: []LanguageResult{}}
}

func marshalResponse(resp Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// Response contains nothing unmarshalable; this is a safeguard.
		return []byte(`{"success":false,"error":"failed to encode response"}`)
	}

	return data
}
