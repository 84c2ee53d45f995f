// Package lang holds the static language rule table consumed by the
// lexical engine: comment delimiters, lexing style and the signature
// patterns used for function and class detection.
package lang

import "regexp"

// Style selects the lexing strategy for a language. The set of styles is
// closed: every supported language lexes in exactly one of these ways.
type Style int

// Lexing styles.
const (
	// StyleBrace covers line/block comment languages with brace-delimited
	// bodies (C, Go, Rust, Java, ...).
	StyleBrace Style = iota
	// StyleIndent covers indentation-delimited languages with triple-quote
	// docstrings (Python).
	StyleIndent
	// StylePlain covers formats with no comment syntax at all (Markdown,
	// JSON, plain text). Lines are only blank or code.
	StylePlain
)

// Delimiters is a block comment open/close token pair.
type Delimiters struct {
	Open  string
	Close string
}

// Rule describes how one language is lexed. Rules are immutable after
// registry construction and safe for concurrent use.
type Rule struct {
	Name             string
	Extensions       []string
	LineComment      string      // empty when the language has none
	BlockComment     *Delimiters // nil when the language has none
	DocComment       string      // structurally distinguished comment prefix
	Style            Style
	FunctionPatterns []*regexp.Regexp // ordered, first match wins
	ClassPattern     *regexp.Regexp   // nil when the language has no class form
}

// HasComments reports whether the rule defines any comment syntax.
func (r *Rule) HasComments() bool {
	return r.LineComment != "" || r.BlockComment != nil || r.DocComment != ""
}
