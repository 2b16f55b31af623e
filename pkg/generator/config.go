package generator

import "fmt"

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

func (r Range) draw(src Source) int {
	return src.IntRange(r.Min, r.Max)
}

// Config sets the interval of every random draw. The row counts depend on
// the drawn n: inequality rows come from [IneqRows.Min, n+2] and equality
// rows from [EqRows.Min, max(1, n/2)].
type Config struct {
	Vars          Range // number of variables n
	IneqRowsMin   int
	EqRowsMin     int
	Objective     Range // c
	Ineq          Range // A coefficients
	IneqRHSFactor Range // per-coefficient multiplier for b
	Eq            Range // Aeq coefficients
	EqRHSFactor   Range // per-coefficient multiplier for beq
	Lower         Range // lb
	UpperOffset   Range // ub[i] - lb[i]
}

// DefaultConfig returns the stock generation intervals.
func DefaultConfig() Config {
	return Config{
		Vars:          Range{5, 20},
		IneqRowsMin:   1,
		EqRowsMin:     0,
		Objective:     Range{-10, 10},
		Ineq:          Range{-5, 5},
		IneqRHSFactor: Range{1, 3},
		Eq:            Range{-3, 3},
		EqRHSFactor:   Range{1, 2},
		Lower:         Range{0, 3},
		UpperOffset:   Range{3, 10000},
	}
}

// Validate reports the first interval that cannot be drawn from.
func (c Config) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"vars", c.Vars},
		{"objective", c.Objective},
		{"ineq", c.Ineq},
		{"ineq rhs factor", c.IneqRHSFactor},
		{"eq", c.Eq},
		{"eq rhs factor", c.EqRHSFactor},
		{"lower", c.Lower},
		{"upper offset", c.UpperOffset},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("%w: %s range %s is empty", ErrInvalidConfig, nr.name, nr.r)
		}
	}

	if c.Vars.Min < 1 {
		return fmt.Errorf("%w: need at least one variable, got %s", ErrInvalidConfig, c.Vars)
	}
	if c.IneqRowsMin < 0 || c.IneqRowsMin > c.Vars.Min+2 {
		return fmt.Errorf("%w: inequality row minimum %d outside [0, %d]", ErrInvalidConfig, c.IneqRowsMin, c.Vars.Min+2)
	}
	if c.EqRowsMin < 0 || c.EqRowsMin > max(1, c.Vars.Min/2) {
		return fmt.Errorf("%w: equality row minimum %d outside [0, %d]", ErrInvalidConfig, c.EqRowsMin, max(1, c.Vars.Min/2))
	}
	// ub must stay strictly above lb
	if c.UpperOffset.Min < 1 {
		return fmt.Errorf("%w: upper offset %s must be positive", ErrInvalidConfig, c.UpperOffset)
	}

	return nil
}
