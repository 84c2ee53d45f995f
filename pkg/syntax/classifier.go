// Package syntax implements the lexical classification engine: a per-line
// state machine that sorts lines into blank/comment/code categories, an
// extent tracker that attributes lines to function and class bodies, and
// the lexer that drives both over a single file.
package syntax

import (
	"strings"

	"github.com/toukei-tech/toukei/pkg/lang"
)

// Kind is the category assigned to one physical line. Exactly one Kind is
// assigned per line.
type Kind int

// Line kinds.
const (
	KindBlank Kind = iota
	KindComment
	KindDocComment
	KindCode
	KindMixed
)

// Span is a half-open byte range into the trimmed line text identifying
// the code portion of a Mixed line.
type Span struct {
	Start int
	End   int
}

// Classification is the classifier verdict for one line. Code is only
// meaningful when Kind is KindMixed.
type Classification struct {
	Kind Kind
	Code Span
}

// LexState is the mutable per-file lexing state. It is owned exclusively
// by one lexer invocation and never shared across files.
type LexState struct {
	// InBlockComment is set while a multi-line block comment is open.
	InBlockComment bool
	// InString is set while a triple-quote docstring is open
	// (indentation-style languages only).
	InString bool
}

// classifier is one of a closed set of per-language classification
// strategies. The active strategy is selected once per file, not per line.
type classifier interface {
	classify(line string, state *LexState, rule *lang.Rule) Classification
}

func classifierFor(style lang.Style) classifier {
	switch style {
	case lang.StyleIndent:
		return indentClassifier{}
	case lang.StylePlain:
		return plainClassifier{}
	default:
		return braceClassifier{}
	}
}

// braceClassifier handles line/block comment languages (C, Go, Rust, ...).
type braceClassifier struct{}

func (braceClassifier) classify(line string, state *LexState, rule *lang.Rule) Classification {
	s := strings.TrimSpace(line)
	if s == "" {
		return Classification{Kind: KindBlank}
	}

	if state.InBlockComment && rule.BlockComment != nil {
		closeTok := rule.BlockComment.Close

		pos := strings.Index(s, closeTok)
		if pos < 0 {
			return Classification{Kind: KindComment}
		}

		state.InBlockComment = false

		end := pos + len(closeTok)
		if end == len(s) {
			return Classification{Kind: KindComment}
		}

		return Classification{Kind: KindMixed, Code: Span{Start: end, End: len(s)}}
	}

	// Doc comment prefixes that embed the block-open token ("/**") fall
	// through to the block handling below so continuation state stays
	// correct; they still count as comments.
	if rule.DocComment != "" && strings.HasPrefix(s, rule.DocComment) {
		embedsBlockOpen := rule.BlockComment != nil && strings.HasPrefix(rule.DocComment, rule.BlockComment.Open)
		if !embedsBlockOpen {
			return Classification{Kind: KindDocComment}
		}
	}

	if rule.LineComment != "" && strings.HasPrefix(s, rule.LineComment) {
		return Classification{Kind: KindComment}
	}

	if rule.BlockComment != nil {
		openTok, closeTok := rule.BlockComment.Open, rule.BlockComment.Close

		pos := strings.Index(s, openTok)
		if pos >= 0 {
			after := s[pos+len(openTok):]

			closePos := strings.Index(after, closeTok)
			if closePos >= 0 {
				end := pos + len(openTok) + closePos + len(closeTok)
				if pos == 0 && end == len(s) {
					return Classification{Kind: KindComment}
				}

				return Classification{Kind: KindMixed, Code: Span{Start: end, End: len(s)}}
			}

			state.InBlockComment = true

			if strings.TrimSpace(s[:pos]) == "" {
				return Classification{Kind: KindComment}
			}

			return Classification{Kind: KindMixed, Code: Span{Start: 0, End: pos}}
		}
	}

	return Classification{Kind: KindCode}
}

// indentClassifier handles indentation-delimited languages where
// triple-quote docstrings behave like block comments and `#` introduces
// line comments (Python).
type indentClassifier struct{}

func (indentClassifier) classify(line string, state *LexState, rule *lang.Rule) Classification {
	s := strings.TrimSpace(line)
	if s == "" {
		return Classification{Kind: KindBlank}
	}

	tokens := docStringTokens(rule)

	if state.InString {
		tok, pos := firstToken(s, tokens)
		if pos < 0 {
			return Classification{Kind: KindComment}
		}

		state.InString = false

		end := pos + len(tok)
		if strings.TrimSpace(s[end:]) == "" {
			return Classification{Kind: KindComment}
		}

		return Classification{Kind: KindMixed, Code: Span{Start: end, End: len(s)}}
	}

	for _, tok := range tokens {
		if !strings.HasPrefix(s, tok) {
			continue
		}

		rest := s[len(tok):]
		if strings.Contains(rest, tok) {
			// Single-line docstring.
			return Classification{Kind: KindDocComment}
		}

		state.InString = true

		if strings.TrimSpace(rest) == "" {
			return Classification{Kind: KindDocComment}
		}

		return Classification{Kind: KindMixed, Code: Span{Start: len(tok), End: len(s)}}
	}

	if rule.LineComment != "" && strings.HasPrefix(s, rule.LineComment) {
		return Classification{Kind: KindComment}
	}

	if rule.LineComment != "" {
		if pos := unescapedIndex(s, rule.LineComment); pos > 0 {
			return Classification{Kind: KindMixed, Code: Span{Start: 0, End: pos}}
		}
	}

	return Classification{Kind: KindCode}
}

// plainClassifier handles formats without comment syntax: lines are blank
// or code, nothing else.
type plainClassifier struct{}

func (plainClassifier) classify(line string, _ *LexState, _ *lang.Rule) Classification {
	if strings.TrimSpace(line) == "" {
		return Classification{Kind: KindBlank}
	}

	return Classification{Kind: KindCode}
}

// docStringTokens returns the triple-quote tokens the rule recognises as
// docstring delimiters.
func docStringTokens(rule *lang.Rule) []string {
	var tokens []string

	if rule.BlockComment != nil {
		tokens = append(tokens, rule.BlockComment.Open)
	}

	if rule.DocComment != "" && (rule.BlockComment == nil || rule.DocComment != rule.BlockComment.Open) {
		tokens = append(tokens, rule.DocComment)
	}

	return tokens
}

// firstToken finds the earliest occurrence of any token in s.
func firstToken(s string, tokens []string) (string, int) {
	best, bestPos := "", -1

	for _, tok := range tokens {
		pos := strings.Index(s, tok)
		if pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = tok, pos
		}
	}

	return best, bestPos
}

// unescapedIndex finds the first occurrence of marker in s that is not
// preceded by a backslash.
func unescapedIndex(s, marker string) int {
	offset := 0

	for {
		pos := strings.Index(s[offset:], marker)
		if pos < 0 {
			return -1
		}

		abs := offset + pos
		if abs == 0 || s[abs-1] != '\\' {
			return abs
		}

		offset = abs + len(marker)
		if offset >= len(s) {
			return -1
		}
	}
}
