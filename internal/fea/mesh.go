package fea

import (
	"fmt"
	"sort"
)

// minElementLength is the smallest admissible element length in mm.
// Two derived node positions closer than this (but not identical)
// indicate conflicting inputs and are rejected rather than merged.
const minElementLength = 1e-9

// buildMesh derives the analysis node positions: a strictly increasing,
// de-duplicated sequence that always contains 0 and the span, plus
// every support position, point-load position and distributed-load
// boundary. Keeping every breakpoint on a node lets point loads map
// directly onto nodal forces and lets each element carry at most a
// single constant distributed intensity.
func buildMesh(b *Beam) ([]float64, error) {
	if b.Span <= 0 {
		return nil, fmt.Errorf("%w: span must be positive, got %g", ErrInvalidGeometry, b.Span)
	}
	if b.EI() <= 0 {
		return nil, fmt.Errorf("%w: flexural rigidity must be positive (E=%g, I=%g)", ErrInvalidGeometry, b.E, b.I)
	}

	positions := []float64{0, b.Span}
	for _, s := range b.Supports {
		if err := checkRange(b.Span, s.Position, "support"); err != nil {
			return nil, err
		}
		positions = append(positions, s.Position)
	}
	for _, p := range b.PointLoads {
		if err := checkRange(b.Span, p.Position, "point load"); err != nil {
			return nil, err
		}
		positions = append(positions, p.Position)
	}
	for _, d := range b.DistributedLoads {
		if d.Start > d.End {
			return nil, fmt.Errorf("%w: distributed load start %g after end %g", ErrOutOfRange, d.Start, d.End)
		}
		if err := checkRange(b.Span, d.Start, "distributed load start"); err != nil {
			return nil, err
		}
		if err := checkRange(b.Span, d.End, "distributed load end"); err != nil {
			return nil, err
		}
		positions = append(positions, d.Start, d.End)
	}

	sort.Float64s(positions)

	// Drop exact duplicates, then reject near-coincident neighbours:
	// silently merging them would hide conflicting inputs.
	nodes := positions[:1]
	for _, x := range positions[1:] {
		if x == nodes[len(nodes)-1] {
			continue
		}
		nodes = append(nodes, x)
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i]-nodes[i-1] < minElementLength {
			return nil, fmt.Errorf("%w: node positions %g and %g would form a zero-length element",
				ErrDegenerateMesh, nodes[i-1], nodes[i])
		}
	}

	return nodes, nil
}

func checkRange(span, x float64, what string) error {
	if x < 0 || x > span {
		return fmt.Errorf("%w: %s position %g outside [0, %g]", ErrOutOfRange, what, x, span)
	}
	return nil
}

// nodeIndex returns the index of position x in nodes. The mesh builder
// guarantees every support and load position is a node, so a miss is a
// programming error.
func nodeIndex(nodes []float64, x float64) int {
	i := sort.SearchFloat64s(nodes, x)
	if i == len(nodes) || nodes[i] != x {
		panic(fmt.Sprintf("fea: position %g is not a mesh node", x))
	}
	return i
}
