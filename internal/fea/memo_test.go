package fea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoBeam() *Beam {
	return &Beam{
		Span: 2000, E: testE, I: testI,
		Supports: []Support{
			{Position: 0, Type: Pinned},
			{Position: 2000, Type: Roller},
		},
		PointLoads: []PointLoad{{Position: 500, Magnitude: 4}},
	}
}

func TestCacheReusesResults(t *testing.T) {
	c := NewCache()

	r1, err := c.Solve(memoBeam(), 10)
	require.NoError(t, err)
	r2, err := c.Solve(memoBeam(), 10)
	require.NoError(t, err)

	assert.Same(t, r1, r2, "value-identical inputs share one result")
	assert.Equal(t, 1, c.Len())
}

func TestCacheDistinguishesInputs(t *testing.T) {
	c := NewCache()

	r1, err := c.Solve(memoBeam(), 10)
	require.NoError(t, err)

	// A different sample count is a different key.
	r2, err := c.Solve(memoBeam(), 11)
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)

	// So is any structural change to the beam.
	changed := memoBeam()
	changed.PointLoads[0].Magnitude = 5
	r3, err := c.Solve(changed, 10)
	require.NoError(t, err)
	assert.NotSame(t, r1, r3)

	assert.Equal(t, 3, c.Len())
}

func TestCachePropagatesErrors(t *testing.T) {
	c := NewCache()
	b := memoBeam()
	b.Supports = nil

	_, err := c.Solve(b, 10)
	require.ErrorIs(t, err, ErrUnderconstrained)
	assert.Equal(t, 0, c.Len(), "failures are not memoized")
}

func TestHashInputsListBoundaries(t *testing.T) {
	// A support moved between lists must not hash like a load with the
	// same scalars: lengths are part of the encoding.
	a := &Beam{Span: 1000, E: 1, I: 1, Supports: []Support{{Position: 1, Type: Pinned}}}
	b := &Beam{Span: 1000, E: 1, I: 1, PointLoads: []PointLoad{{Position: 1, Magnitude: 2}}}
	assert.NotEqual(t, hashInputs(a, 10), hashInputs(b, 10))
}
