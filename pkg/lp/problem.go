// Package lp defines the linear-programming problem record produced by the
// generator and consumed by downstream solvers.
package lp

import "fmt"

// Problem is one LP instance:
//
//	optimize   c·x
//	subject to A x <= b
//	           Aeq x = beq
//	           lb <= x <= ub
//
// The JSON field names are the file format and must not change.
type Problem struct {
	C              []int   `json:"c"`
	A              [][]int `json:"A"`
	B              []int   `json:"b"`
	Aeq            [][]int `json:"Aeq"`
	Beq            []int   `json:"beq"`
	LB             []int   `json:"lb"`
	UB             []int   `json:"ub"`
	IsMaximization bool    `json:"ismaximization"`
}

// NewProblem assembles a Problem and checks that its dimensions agree.
// Nil constraint slices are normalized to empty ones so they encode as [].
func NewProblem(c []int, a [][]int, b []int, aeq [][]int, beq []int, lb, ub []int, isMax bool) (Problem, error) {
	p := Problem{
		C:              c,
		A:              nonNilRows(a),
		B:              nonNil(b),
		Aeq:            nonNilRows(aeq),
		Beq:            nonNil(beq),
		LB:             lb,
		UB:             ub,
		IsMaximization: isMax,
	}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// N returns the number of variables.
func (p Problem) N() int { return len(p.C) }

// MIneq returns the number of inequality constraints.
func (p Problem) MIneq() int { return len(p.A) }

// MEq returns the number of equality constraints.
func (p Problem) MEq() int { return len(p.Aeq) }

// Validate checks the structural invariants of the record.
func (p Problem) Validate() error {
	n := len(p.C)
	if n == 0 {
		return ErrEmptyObjective
	}

	if len(p.A) != len(p.B) {
		return fmt.Errorf("%w: len(A)=%d, len(b)=%d", ErrShapeMismatch, len(p.A), len(p.B))
	}
	for i, row := range p.A {
		if len(row) != n {
			return fmt.Errorf("%w: A[%d] has %d columns, want %d", ErrShapeMismatch, i, len(row), n)
		}
	}

	if len(p.Aeq) != len(p.Beq) {
		return fmt.Errorf("%w: len(Aeq)=%d, len(beq)=%d", ErrShapeMismatch, len(p.Aeq), len(p.Beq))
	}
	for i, row := range p.Aeq {
		if len(row) != n {
			return fmt.Errorf("%w: Aeq[%d] has %d columns, want %d", ErrShapeMismatch, i, len(row), n)
		}
	}

	if len(p.LB) != n || len(p.UB) != n {
		return fmt.Errorf("%w: len(lb)=%d, len(ub)=%d, want %d", ErrShapeMismatch, len(p.LB), len(p.UB), n)
	}
	for i := range n {
		if p.UB[i] <= p.LB[i] {
			return fmt.Errorf("%w: ub[%d]=%d is not above lb[%d]=%d", ErrInvalidBounds, i, p.UB[i], i, p.LB[i])
		}
	}

	return nil
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func nonNilRows(s [][]int) [][]int {
	if s == nil {
		return [][]int{}
	}
	return s
}
