package fea

import "gonum.org/v1/gonum/mat"

// system is the assembled global problem: stiffness matrix K, force
// vector F and, per element, the effective downward distributed
// intensity (N/mm) needed again during diagram sampling.
type system struct {
	beam  *Beam
	nodes []float64
	k     *mat.Dense    // 2N×2N, symmetric
	f     *mat.VecDense // 2N
	w     []float64     // len N-1, downward positive
}

// assemble scatter-adds each element's local stiffness matrix into the
// global K at DOF indices [2e, 2e+1, 2e+2, 2e+3] and builds the global
// force vector from point loads and distributed-load fixed-end vectors.
//
// A distributed load contributes only to elements fully contained in
// its [start, end] interval; an element it covers partially receives
// nothing from it. The mesh builder places nodes at every load
// boundary, so with a derived mesh every element is either fully
// covered or untouched.
//
// Loads are given downward positive and the internal axis is upward
// positive, so magnitudes are negated on entry.
func assemble(b *Beam, nodes []float64) *system {
	n := len(nodes)
	sys := &system{
		beam:  b,
		nodes: nodes,
		k:     mat.NewDense(2*n, 2*n, nil),
		f:     mat.NewVecDense(2*n, nil),
		w:     make([]float64, n-1),
	}

	ei := b.EI()
	for e := 0; e < n-1; e++ {
		x0, x1 := nodes[e], nodes[e+1]
		l := x1 - x0

		ke := elementStiffness(ei, l)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				gi, gj := 2*e+i, 2*e+j
				sys.k.Set(gi, gj, sys.k.At(gi, gj)+ke.At(i, j))
			}
		}

		// Sum the intensities of every distributed load covering the
		// whole element into a single effective value. kN/m ≡ N/mm.
		for _, d := range b.DistributedLoads {
			if d.Start <= x0 && d.End >= x1 {
				sys.w[e] += d.Intensity
			}
		}
		if sys.w[e] != 0 {
			fe := fixedEndLoads(-sys.w[e], l)
			for i, v := range fe {
				gi := 2*e + i
				sys.f.SetVec(gi, sys.f.AtVec(gi)+v)
			}
		}
	}

	for _, p := range b.PointLoads {
		gi := 2 * nodeIndex(nodes, p.Position) // vertical DOF
		sys.f.SetVec(gi, sys.f.AtVec(gi)-p.Magnitude*1000)
	}

	return sys
}
