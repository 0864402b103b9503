package fea

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// constrainedDOFs returns the local DOF offsets (0 = vertical,
// 1 = rotation) a support of this type constrains at its node.
func (t SupportType) constrainedDOFs() []int {
	switch t {
	case Fixed:
		return []int{0, 1}
	case Pinned, Roller:
		return []int{0}
	case Free:
		return nil
	}
	panic(fmt.Sprintf("fea: unknown support type %d", int(t)))
}

// partition splits the global DOF indices into the free and fixed sets
// according to the supports. The two lists are disjoint, sorted and
// together cover all 2N DOFs. Duplicate constraints (two supports on
// the same node) collapse.
func partition(b *Beam, nodes []float64) (free, fixed []int) {
	constrained := make(map[int]bool)
	for _, s := range b.Supports {
		node := nodeIndex(nodes, s.Position)
		for _, d := range s.Type.constrainedDOFs() {
			constrained[2*node+d] = true
		}
	}

	for i := 0; i < 2*len(nodes); i++ {
		if constrained[i] {
			fixed = append(fixed, i)
		} else {
			free = append(free, i)
		}
	}
	sort.Ints(fixed)
	return free, fixed
}

// reduce extracts the rows and columns of K and the entries of F that
// belong to the free DOF set. With no free DOFs there is nothing to
// reduce (gonum rejects zero-sized matrices) and both results are nil.
func reduce(k *mat.Dense, f *mat.VecDense, free []int) (*mat.Dense, *mat.VecDense) {
	m := len(free)
	if m == 0 {
		return nil, nil
	}
	kff := mat.NewDense(m, m, nil)
	ff := mat.NewVecDense(m, nil)
	for i, gi := range free {
		ff.SetVec(i, f.AtVec(gi))
		for j, gj := range free {
			kff.Set(i, j, k.At(gi, gj))
		}
	}
	return kff, ff
}
