package fea

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// pivotRelTol is the relative pivot threshold of the elimination. A
// pivot smaller than this fraction of the largest entry of the reduced
// matrix means a rigid-body mode survived the supports.
const pivotRelTol = 1e-12

// solveGauss solves a·x = b by Gaussian elimination with partial
// pivoting. The inputs are not modified. A nil right-hand side (every
// DOF constrained, nothing to solve) yields a nil solution. A pivot
// below the relative threshold reports ErrUnderconstrained instead of
// substituting an arbitrary epsilon and producing a meaningless finite
// answer.
func solveGauss(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	if b == nil {
		return nil, nil
	}
	m := b.Len()

	u := mat.DenseCopyOf(a)
	rhs := mat.VecDenseCopyOf(b)

	var maxEntry float64
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			maxEntry = math.Max(maxEntry, math.Abs(u.At(i, j)))
		}
	}
	tol := pivotRelTol * maxEntry

	for col := 0; col < m; col++ {
		// Largest-magnitude pivot candidate among the remaining rows.
		pivRow := col
		pivAbs := math.Abs(u.At(col, col))
		for row := col + 1; row < m; row++ {
			if abs := math.Abs(u.At(row, col)); abs > pivAbs {
				pivRow, pivAbs = row, abs
			}
		}
		if pivAbs <= tol {
			return nil, fmt.Errorf("%w: pivot %.3e at column %d", ErrUnderconstrained, pivAbs, col)
		}
		if pivRow != col {
			swapRows(u, pivRow, col)
			v0, v1 := rhs.AtVec(pivRow), rhs.AtVec(col)
			rhs.SetVec(pivRow, v1)
			rhs.SetVec(col, v0)
		}

		piv := u.At(col, col)
		for row := col + 1; row < m; row++ {
			factor := u.At(row, col) / piv
			if factor == 0 {
				continue
			}
			for j := col; j < m; j++ {
				u.Set(row, j, u.At(row, j)-factor*u.At(col, j))
			}
			rhs.SetVec(row, rhs.AtVec(row)-factor*rhs.AtVec(col))
		}
	}

	x := mat.NewVecDense(m, nil)
	for row := m - 1; row >= 0; row-- {
		sum := rhs.AtVec(row)
		for j := row + 1; j < m; j++ {
			sum -= u.At(row, j) * x.AtVec(j)
		}
		x.SetVec(row, sum/u.At(row, row))
	}
	return x, nil
}

func swapRows(a *mat.Dense, i, j int) {
	_, c := a.Dims()
	for col := 0; col < c; col++ {
		vi, vj := a.At(i, col), a.At(j, col)
		a.Set(i, col, vj)
		a.Set(j, col, vi)
	}
}
