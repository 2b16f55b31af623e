package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// edgeSource always draws one end of the requested interval.
type edgeSource struct {
	high bool
}

func (s edgeSource) IntRange(lo, hi int) int {
	if s.high {
		return hi
	}
	return lo
}

func (s edgeSource) Bool() bool { return s.high }

func TestGenerateLowEdge(t *testing.T) {
	p := NewDefault(edgeSource{}).Generate()

	if p.N() != 5 || p.MIneq() != 1 || p.MEq() != 0 {
		t.Fatalf("dimensions = (%d, %d, %d), want (5, 1, 0)", p.N(), p.MIneq(), p.MEq())
	}
	for i := range p.N() {
		if p.C[i] != -10 || p.A[0][i] != -5 || p.LB[i] != 0 || p.UB[i] != 3 {
			t.Errorf("variable %d: c=%d a=%d lb=%d ub=%d", i, p.C[i], p.A[0][i], p.LB[i], p.UB[i])
		}
	}
	// |-5| * 1 over five columns
	if p.B[0] != 25 {
		t.Errorf("b[0] = %d, want 25", p.B[0])
	}
	if p.IsMaximization {
		t.Error("expected minimization")
	}
}

func TestGenerateHighEdge(t *testing.T) {
	p := NewDefault(edgeSource{high: true}).Generate()

	if p.N() != 20 || p.MIneq() != 22 || p.MEq() != 10 {
		t.Fatalf("dimensions = (%d, %d, %d), want (20, 22, 10)", p.N(), p.MIneq(), p.MEq())
	}
	for i, b := range p.B {
		if b != 20*5*3 {
			t.Errorf("b[%d] = %d, want %d", i, b, 20*5*3)
		}
	}
	for i, beq := range p.Beq {
		if beq != 20*3*2 {
			t.Errorf("beq[%d] = %d, want %d", i, beq, 20*3*2)
		}
	}
	if p.LB[0] != 3 || p.UB[0] != 10003 {
		t.Errorf("bounds = [%d, %d], want [3, 10003]", p.LB[0], p.UB[0])
	}
	if !p.IsMaximization {
		t.Error("expected maximization")
	}
}

func TestGenerateInvariants(t *testing.T) {
	g := NewDefault(NewSource(42))
	cfg := DefaultConfig()

	for k := range 2000 {
		p := g.Generate()
		n := p.N()

		if n < 5 || n > 20 {
			t.Fatalf("problem %d: n = %d outside [5, 20]", k, n)
		}
		if p.MIneq() < 1 || p.MIneq() > n+2 {
			t.Fatalf("problem %d: m_ineq = %d outside [1, %d]", k, p.MIneq(), n+2)
		}
		if p.MEq() < 0 || p.MEq() > max(1, n/2) {
			t.Fatalf("problem %d: m_eq = %d outside [0, %d]", k, p.MEq(), max(1, n/2))
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("problem %d: %v", k, err)
		}

		for _, c := range p.C {
			if c < cfg.Objective.Min || c > cfg.Objective.Max {
				t.Fatalf("problem %d: c = %d outside %s", k, c, cfg.Objective)
			}
		}
		for i, row := range p.A {
			lo, hi := 0, 0
			for _, x := range row {
				if x < -5 || x > 5 {
					t.Fatalf("problem %d: A coefficient %d outside [-5, 5]", k, x)
				}
				lo += abs(x)
				hi += 3 * abs(x)
			}
			if p.B[i] < lo || p.B[i] > hi {
				t.Fatalf("problem %d: b[%d] = %d outside [%d, %d]", k, i, p.B[i], lo, hi)
			}
		}
		for i, row := range p.Aeq {
			lo, hi := 0, 0
			for _, x := range row {
				if x < -3 || x > 3 {
					t.Fatalf("problem %d: Aeq coefficient %d outside [-3, 3]", k, x)
				}
				lo += abs(x)
				hi += 2 * abs(x)
			}
			if p.Beq[i] < lo || p.Beq[i] > hi {
				t.Fatalf("problem %d: beq[%d] = %d outside [%d, %d]", k, i, p.Beq[i], lo, hi)
			}
		}
		for i := range n {
			if p.LB[i] < 0 || p.LB[i] > 3 {
				t.Fatalf("problem %d: lb[%d] = %d outside [0, 3]", k, i, p.LB[i])
			}
			if off := p.UB[i] - p.LB[i]; off < 3 || off > 10000 {
				t.Fatalf("problem %d: ub[%d]-lb[%d] = %d outside [3, 10000]", k, i, i, off)
			}
		}
	}
}

func TestGenerateCoversBothSenses(t *testing.T) {
	g := NewDefault(NewSource(7))

	seen := map[bool]bool{}
	for range 200 {
		seen[g.Generate().IsMaximization] = true
	}
	if !seen[true] || !seen[false] {
		t.Errorf("expected both senses over 200 problems, saw %v", seen)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := NewDefault(NewSource(0)).Generate()
	second := NewDefault(NewSource(0)).Generate()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different problems (-first +second):\n%s", diff)
	}

	other := NewDefault(NewSource(1)).Generate()
	if cmp.Equal(first, other) {
		t.Error("different seeds produced identical problems")
	}
}

func TestNew(t *testing.T) {
	t.Run("NilSource", func(t *testing.T) {
		if _, err := New(nil, DefaultConfig()); !errors.Is(err, ErrNilSource) {
			t.Errorf("New(nil) error = %v, want %v", err, ErrNilSource)
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UpperOffset = Range{0, 10}
		if _, err := New(NewSource(1), cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("New error = %v, want %v", err, ErrInvalidConfig)
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Vars = Range{3, 3}
		g, err := New(NewSource(1), cfg)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		// n/2 is 1 for n = 3
		for range 50 {
			p := g.Generate()
			if p.N() != 3 || p.MEq() > 1 || p.MIneq() > 5 {
				t.Fatalf("unexpected dimensions (%d, %d, %d)", p.N(), p.MIneq(), p.MEq())
			}
		}
	})
}

func TestDescriptionAndDefaultCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vars = Range{7, 9}
	g, err := New(NewSource(1), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if desc := g.Description(); !strings.Contains(desc, "[7, 9]") {
		t.Errorf("Description() = %q, should name the variable range", desc)
	}
	if got := g.DefaultCount(); got != 100 {
		t.Errorf("DefaultCount() = %d, want 100", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"EmptyVars", func(c *Config) { c.Vars = Range{6, 5} }},
		{"NoVars", func(c *Config) { c.Vars = Range{0, 4} }},
		{"EmptyObjective", func(c *Config) { c.Objective = Range{1, -1} }},
		{"NegativeIneqRows", func(c *Config) { c.IneqRowsMin = -1 }},
		{"TooManyIneqRows", func(c *Config) { c.IneqRowsMin = 8 }},
		{"TooManyEqRows", func(c *Config) { c.EqRowsMin = 3 }},
		{"ZeroOffset", func(c *Config) { c.UpperOffset = Range{0, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want %v", err, ErrInvalidConfig)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig invalid: %v", err)
	}
}

func TestRandSource(t *testing.T) {
	s := NewSource(99)
	if s.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", s.Seed())
	}

	seen := map[int]bool{}
	for range 1000 {
		v := s.IntRange(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("IntRange(-2, 2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntRange(-2, 2) hit %d distinct values, want 5", len(seen))
	}

	if got := s.IntRange(4, 4); got != 4 {
		t.Errorf("IntRange(4, 4) = %d", got)
	}
}
