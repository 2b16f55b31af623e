// Package generator produces random linear-programming problems.
//
// Right-hand sides are built as sum(|a_ij| * r_ij) with a positive random
// multiplier per coefficient. That makes a feasible point near the lower
// bounds more likely but guarantees nothing: generated systems may be
// infeasible, unbounded, or contain inconsistent dependent equality rows.
package generator

import (
	"fmt"

	"pkg.jsn.cam/lpgen/pkg/lp"
)

// Generator draws LP problems from a Source.
type Generator struct {
	src Source
	cfg Config
}

// New returns a Generator that draws from src using the intervals in cfg.
func New(src Source, cfg Config) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{src: src, cfg: cfg}, nil
}

// NewDefault returns a Generator with DefaultConfig.
func NewDefault(src Source) *Generator {
	g, err := New(src, DefaultConfig())
	if err != nil {
		panic(err) // DefaultConfig is always valid
	}
	return g
}

// Description returns a human-readable description of the output.
func (g *Generator) Description() string {
	return fmt.Sprintf("LP problems: n in %s, c in %s, A in %s, Aeq in %s",
		g.cfg.Vars, g.cfg.Objective, g.cfg.Ineq, g.cfg.Eq)
}

// DefaultCount returns the suggested batch size.
func (g *Generator) DefaultCount() int {
	return 100
}

// Generate draws one problem. The draw order is fixed so that a given seed
// always yields the same problem: n, inequality row count, equality row
// count, c, the A rows with b, the Aeq rows with beq, lb, ub, sense.
func (g *Generator) Generate() lp.Problem {
	cfg := g.cfg

	n := cfg.Vars.draw(g.src)
	mIneq := g.src.IntRange(cfg.IneqRowsMin, n+2)
	mEq := g.src.IntRange(cfg.EqRowsMin, max(1, n/2))

	c := g.vector(n, cfg.Objective)

	a := make([][]int, mIneq)
	b := make([]int, mIneq)
	for i := range mIneq {
		a[i], b[i] = g.row(n, cfg.Ineq, cfg.IneqRHSFactor)
	}

	aeq := make([][]int, mEq)
	beq := make([]int, mEq)
	for i := range mEq {
		aeq[i], beq[i] = g.row(n, cfg.Eq, cfg.EqRHSFactor)
	}

	lb := g.vector(n, cfg.Lower)
	ub := make([]int, n)
	for i := range n {
		ub[i] = lb[i] + cfg.UpperOffset.draw(g.src)
	}

	isMax := g.src.Bool()

	p, err := lp.NewProblem(c, a, b, aeq, beq, lb, ub, isMax)
	if err != nil {
		// Config.Validate rules this out
		panic(fmt.Sprintf("generator produced malformed problem: %v", err))
	}
	return p
}

func (g *Generator) vector(n int, r Range) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.draw(g.src)
	}
	return v
}

// row draws n coefficients, then one multiplier per coefficient (zeros
// included) for the right-hand side.
func (g *Generator) row(n int, coef, factor Range) ([]int, int) {
	row := g.vector(n, coef)
	rhs := 0
	for _, x := range row {
		rhs += abs(x) * factor.draw(g.src)
	}
	return row, rhs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
