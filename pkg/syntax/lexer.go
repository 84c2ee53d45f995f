package syntax

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/stats"
)

// ErrNoStrategy is returned when no lexer strategy exists for a language.
var ErrNoStrategy = errors.New("no lexer strategy for language")

// Scanner limits. Minified single-line sources are the common reason for
// oversized lines.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 4 * 1024 * 1024
)

// Lexer streams one file's lines through a classification strategy and an
// extent tracker, producing a per-file statistics record. A Lexer is
// cheap; create one per file so classifier state is never shared.
type Lexer struct {
	rule *lang.Rule
}

// NewLexer selects the lexing strategy for the given rule.
func NewLexer(rule *lang.Rule) (*Lexer, error) {
	if rule == nil {
		return nil, ErrNoStrategy
	}

	return &Lexer{rule: rule}, nil
}

// Lex consumes the reader line by line and returns the file statistics.
// The invariant lines == blanks + comments + code holds for every result;
// Mixed lines count as code and doc comments count as comments.
func (l *Lexer) Lex(reader io.Reader) (stats.FileStat, error) {
	var stat stats.FileStat

	cls := classifierFor(l.rule.Style)
	tracker := trackerFor(l.rule)
	state := &LexState{}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineBuffer)

	for scanner.Scan() {
		line := strings.ToValidUTF8(scanner.Text(), "�")
		stat.Lines++

		verdict := cls.classify(line, state, l.rule)

		switch verdict.Kind {
		case KindBlank:
			stat.Blanks++
		case KindComment, KindDocComment:
			stat.Comments++
		case KindCode, KindMixed:
			stat.Code++

			code := strings.TrimSpace(line)
			if verdict.Kind == KindMixed {
				code = code[verdict.Code.Start:verdict.Code.End]
			}

			if tracker.observe(code, indentColumns(line)) {
				stat.Functions++
			}

			if l.rule.ClassPattern != nil && l.rule.ClassPattern.MatchString(code) {
				stat.Classes++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return stats.FileStat{}, fmt.Errorf("scan lines: %w", err)
	}

	return stat, nil
}
