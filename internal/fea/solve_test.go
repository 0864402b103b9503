package fea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveGauss(t *testing.T) {
	// First column forces a pivot swap: the largest candidate is in
	// the last row.
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		2, 5, 3,
		4, 1, 2,
	})
	b := mat.NewVecDense(3, []float64{14, 19, 12})

	x, err := solveGauss(a, b)
	require.NoError(t, err)

	// Residual check instead of hand-solved values.
	var ax mat.VecDense
	ax.MulVec(a, x)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, b.AtVec(i), ax.AtVec(i), 1e-9)
	}

	// Inputs untouched.
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 14.0, b.AtVec(0))
}

func TestSolveGaussSingular(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		2, 4, 6, // multiple of row 0
		1, 0, 1,
	})
	b := mat.NewVecDense(3, []float64{1, 2, 3})

	_, err := solveGauss(a, b)
	require.ErrorIs(t, err, ErrUnderconstrained)
}

func TestSolveGaussEmpty(t *testing.T) {
	// Every DOF constrained: the reduced system is empty and the
	// solution with it.
	x, err := solveGauss(reduce(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), mat.NewVecDense(2, nil), nil))
	require.NoError(t, err)
	assert.Nil(t, x)
}
