package fea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMesh(t *testing.T) {
	cases := []struct {
		name string
		beam Beam
		want []float64
	}{
		{
			name: "support and distributed load breakpoints",
			beam: Beam{
				Span: 2000, E: testE, I: testI,
				Supports:         []Support{{Position: 1500, Type: Roller}},
				DistributedLoads: []DistributedLoad{{Start: 0, End: 2000, Intensity: 1}},
			},
			want: []float64{0, 1500, 2000},
		},
		{
			name: "bare beam keeps both ends",
			beam: Beam{Span: 1000, E: testE, I: testI},
			want: []float64{0, 1000},
		},
		{
			name: "duplicates collapse",
			beam: Beam{
				Span: 3000, E: testE, I: testI,
				Supports:   []Support{{Position: 0, Type: Pinned}, {Position: 3000, Type: Roller}},
				PointLoads: []PointLoad{{Position: 1200, Magnitude: 1}, {Position: 1200, Magnitude: 2}},
			},
			want: []float64{0, 1200, 3000},
		},
		{
			name: "interior load window",
			beam: Beam{
				Span:             5000,
				E:                testE, I: testI,
				DistributedLoads: []DistributedLoad{{Start: 1000, End: 4000, Intensity: 2}},
			},
			want: []float64{0, 1000, 4000, 5000},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := buildMesh(&tc.beam)
			require.NoError(t, err)
			assert.Equal(t, tc.want, nodes)
		})
	}
}

func TestBuildMeshErrors(t *testing.T) {
	cases := []struct {
		name string
		beam Beam
		want error
	}{
		{
			name: "zero span",
			beam: Beam{Span: 0, E: testE, I: testI},
			want: ErrInvalidGeometry,
		},
		{
			name: "negative span",
			beam: Beam{Span: -100, E: testE, I: testI},
			want: ErrInvalidGeometry,
		},
		{
			name: "zero rigidity",
			beam: Beam{Span: 1000, E: 0, I: testI},
			want: ErrInvalidGeometry,
		},
		{
			name: "support beyond span",
			beam: Beam{
				Span: 1000, E: testE, I: testI,
				Supports: []Support{{Position: 1500, Type: Roller}},
			},
			want: ErrOutOfRange,
		},
		{
			name: "negative point load position",
			beam: Beam{
				Span: 1000, E: testE, I: testI,
				PointLoads: []PointLoad{{Position: -1, Magnitude: 1}},
			},
			want: ErrOutOfRange,
		},
		{
			name: "inverted distributed load",
			beam: Beam{
				Span: 1000, E: testE, I: testI,
				DistributedLoads: []DistributedLoad{{Start: 800, End: 200, Intensity: 1}},
			},
			want: ErrOutOfRange,
		},
		{
			name: "near-coincident breakpoints",
			beam: Beam{
				Span:       1000, E: testE, I: testI,
				Supports:   []Support{{Position: 500, Type: Roller}},
				PointLoads: []PointLoad{{Position: 500 + 1e-12, Magnitude: 1}},
			},
			want: ErrDegenerateMesh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildMesh(&tc.beam)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
