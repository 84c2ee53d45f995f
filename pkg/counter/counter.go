// Package counter orchestrates the per-file counting step: language
// resolution, binary detection, text normalization and lexing.
package counter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/toukei-tech/toukei/pkg/lang"
	"github.com/toukei-tech/toukei/pkg/stats"
	"github.com/toukei-tech/toukei/pkg/syntax"
)

// Error taxonomy. ErrBinary is a control signal meaning "skip this file",
// never a fatal condition; ErrIO and ErrLex mark files that could not be
// counted.
var (
	// ErrBinary marks a file whose leading bytes look like binary content.
	ErrBinary = errors.New("binary file")
	// ErrLex marks a file with no resolvable language or lexer strategy.
	ErrLex = errors.New("lex error")
	// ErrIO marks a file that could not be opened or read.
	ErrIO = errors.New("io error")
)

// sniffLen is how many leading bytes are inspected for binary content.
const sniffLen = 1024

// Counter counts one file at a time. Counters hold no per-file state and
// are safe for concurrent use; pipelines still create one per worker so
// ownership stays simple.
type Counter struct {
	registry *lang.Registry
}

// New creates a Counter backed by the given language registry.
func New(registry *lang.Registry) *Counter {
	return &Counter{registry: registry}
}

// Count lexes a single file into a FileStat stamped with language, path,
// name and size. Unknown extensions are ErrLex, unreadable files ErrIO,
// and binary content ErrBinary.
func (c *Counter) Count(path string) (stats.FileStat, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	rule, ok := c.registry.LookupExtension(ext)
	if !ok {
		return stats.FileStat{}, fmt.Errorf("%w: unknown language for extension %q", ErrLex, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return stats.FileStat{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return stats.FileStat{}, fmt.Errorf("%w: %v", ErrIO, err)
	}

	head := make([]byte, sniffLen)

	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return stats.FileStat{}, fmt.Errorf("%w: %v", ErrIO, err)
	}

	head = head[:n]
	if enry.IsBinary(head) {
		return stats.FileStat{}, ErrBinary
	}

	lexer, err := syntax.NewLexer(rule)
	if err != nil {
		return stats.FileStat{}, fmt.Errorf("%w: %v", ErrLex, err)
	}

	// The sniffed prefix is replayed ahead of the rest of the file so the
	// lexer sees every byte exactly once.
	stat, err := lexer.Lex(io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		return stats.FileStat{}, fmt.Errorf("%w: %v", ErrLex, err)
	}

	stat.Language = rule.Name
	stat.Path = path
	stat.Name = filepath.Base(path)
	stat.Size = info.Size()

	return stat, nil
}
