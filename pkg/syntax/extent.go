package syntax

import "github.com/toukei-tech/toukei/pkg/lang"

// extentTracker decides, per code line, whether the line is attributable
// to an open function body. The functions metric is a body-line count
// (signature through closing delimiter, inclusive), not a count of
// distinct functions; nested definitions do not restart the extent.
//
// Trackers only ever see Code/Mixed content — for Mixed lines, only the
// code span. Blank and comment-only lines bypass them entirely.
type extentTracker interface {
	// observe consumes the code text of one line plus its column
	// indentation and reports whether the line counts toward functions.
	observe(code string, indent int) bool
}

func trackerFor(rule *lang.Rule) extentTracker {
	if rule.Style == lang.StyleIndent {
		return &indentTracker{rule: rule}
	}

	return &braceTracker{rule: rule}
}

// braceTracker implements the brace-depth policy for brace-delimited
// languages.
type braceTracker struct {
	rule *lang.Rule

	inFunction bool
	depth      int
	prev       int
}

func (t *braceTracker) observe(code string, _ int) bool {
	// A function whose braces balanced out on the previous line ended
	// there; the closing line itself was still credited.
	if t.inFunction && t.prev == 0 {
		t.inFunction = false
	}

	if !t.inFunction {
		for _, pattern := range t.rule.FunctionPatterns {
			if pattern.MatchString(code) {
				t.inFunction = true
				t.depth = 0

				break
			}
		}
	}

	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			t.depth++
		case '}':
			if t.depth > 0 {
				t.depth--
			}
		}
	}

	t.prev = t.depth

	return t.inFunction
}

// indentTracker implements the indentation policy for
// indentation-delimited languages. Entry is deferred: the signature line
// is credited immediately, and function mode begins on the next code line.
type indentTracker struct {
	rule *lang.Rule

	inFunction bool
	deferEntry bool
	baseIndent int
}

func (t *indentTracker) observe(code string, indent int) bool {
	if t.deferEntry {
		t.deferEntry = false
		t.inFunction = true
	}

	if t.inFunction && indent <= t.baseIndent {
		t.inFunction = false
	}

	if t.inFunction {
		return true
	}

	for _, pattern := range t.rule.FunctionPatterns {
		if pattern.MatchString(code) {
			t.baseIndent = indent
			t.deferEntry = true

			return true
		}
	}

	return false
}

// indentColumns measures a raw line's leading whitespace: tabs count as
// four columns, spaces as one.
func indentColumns(line string) int {
	columns := 0

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			columns++
		case '\t':
			columns += 4
		default:
			return columns
		}
	}

	return columns
}
