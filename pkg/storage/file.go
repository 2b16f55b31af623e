// Package storage persists batches of LP problems, either as a plain JSON
// file or in a bbolt archive.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pkg.jsn.cam/lpgen/pkg/lp"
)

// EncodeProblems writes problems as a JSON list indented by two spaces.
// An empty batch is written as [].
func EncodeProblems(w io.Writer, problems []lp.Problem) error {
	if problems == nil {
		problems = []lp.Problem{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(problems); err != nil {
		return fmt.Errorf("failed to encode problems: %w", err)
	}

	return nil
}

// WriteProblemsFile replaces the file at path with the encoded batch.
// New files get mode 0644; parent directories are not created.
func WriteProblemsFile(path string, problems []lp.Problem) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodeProblems(f, problems); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// DecodeProblems reads a JSON list of problems and validates each one.
func DecodeProblems(r io.Reader) ([]lp.Problem, error) {
	var problems []lp.Problem
	if err := json.NewDecoder(r).Decode(&problems); err != nil {
		return nil, fmt.Errorf("failed to decode problems: %w", err)
	}

	for i := range problems {
		normalize(&problems[i])
		if err := problems[i].Validate(); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i, err)
		}
	}

	if problems == nil {
		problems = []lp.Problem{}
	}
	return problems, nil
}

// ReadProblemsFile loads a batch written by WriteProblemsFile.
func ReadProblemsFile(path string) ([]lp.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeProblems(f)
}

// normalize fills in optional constraint lists that were absent in the input.
func normalize(p *lp.Problem) {
	if p.A == nil {
		p.A = [][]int{}
	}
	if p.B == nil {
		p.B = []int{}
	}
	if p.Aeq == nil {
		p.Aeq = [][]int{}
	}
	if p.Beq == nil {
		p.Beq = []int{}
	}
}
