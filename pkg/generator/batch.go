package generator

import (
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/lpgen/pkg/lp"
	"pkg.jsn.cam/lpgen/pkg/storage"
)

// DefaultOutputPath is where the CLI writes a batch when no path is given.
const DefaultOutputPath = "problems.json"

// BatchOption configures GenerateBatch.
type BatchOption func(*batchOptions)

type batchOptions struct {
	progress func(done, total int)
}

// WithProgress registers fn to be called after each generated problem.
func WithProgress(fn func(done, total int)) BatchOption {
	return func(o *batchOptions) {
		o.progress = fn
	}
}

// GenerateBatch draws count problems in order. If dest is non-empty the
// whole batch is written there as an indented JSON list, replacing any
// existing file; an empty dest skips persistence. On a write error the
// generated problems are still returned.
func (g *Generator) GenerateBatch(count int, dest string, opts ...BatchOption) ([]lp.Problem, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	var o batchOptions
	for _, opt := range opts {
		opt(&o)
	}

	problems := make([]lp.Problem, 0, count)
	for i := range count {
		problems = append(problems, g.Generate())
		if o.progress != nil {
			o.progress(i+1, count)
		}
	}

	if dest == "" {
		return problems, nil
	}

	if err := storage.WriteProblemsFile(dest, problems); err != nil {
		return problems, err
	}

	return problems, nil
}

// ParseCount parses a user-supplied problem count.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCount)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}

	return n, nil
}
