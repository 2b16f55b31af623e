package lp

import "gonum.org/v1/gonum/mat"

// Matrices holds a Problem converted to gonum types. A and Aeq are nil when
// the problem has no constraints of that kind, since gonum rejects
// zero-sized matrices.
type Matrices struct {
	C   *mat.VecDense
	A   *mat.Dense
	B   *mat.VecDense
	Aeq *mat.Dense
	Beq *mat.VecDense
	LB  *mat.VecDense
	UB  *mat.VecDense
}

// Matrices converts the problem for use with gonum-based solvers.
// The problem must be valid.
func (p Problem) Matrices() Matrices {
	return Matrices{
		C:   vector(p.C),
		A:   dense(p.A, p.N()),
		B:   vector(p.B),
		Aeq: dense(p.Aeq, p.N()),
		Beq: vector(p.Beq),
		LB:  vector(p.LB),
		UB:  vector(p.UB),
	}
}

// EqualityRank returns the numerical rank of Aeq, or 0 when there are no
// equality constraints. A rank below MEq means some equality rows are
// linearly dependent; the system may then be inconsistent.
func (p Problem) EqualityRank() int {
	a := dense(p.Aeq, p.N())
	if a == nil {
		return 0
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	return svd.Rank(1e-9)
}

func vector(xs []int) *mat.VecDense {
	if len(xs) == 0 {
		return nil
	}
	data := make([]float64, len(xs))
	for i, x := range xs {
		data[i] = float64(x)
	}
	return mat.NewVecDense(len(data), data)
}

func dense(rows [][]int, n int) *mat.Dense {
	if len(rows) == 0 || n == 0 {
		return nil
	}
	data := make([]float64, 0, len(rows)*n)
	for _, row := range rows {
		for _, x := range row {
			data = append(data, float64(x))
		}
	}
	return mat.NewDense(len(rows), n, data)
}
