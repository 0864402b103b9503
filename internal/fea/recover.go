package fea

import "gonum.org/v1/gonum/mat"

// recoverResponse scatters the free-DOF solution back into the full
// displacement vector (zero at constrained DOFs) and computes the
// reaction vector R = K·d − F over all DOFs. Entries of R at free DOFs
// are ~0 by equilibrium; entries at constrained DOFs are the physical
// support reactions (upward-positive force, CCW-positive moment).
func recoverResponse(sys *system, free []int, df *mat.VecDense) (d, r *mat.VecDense) {
	n := sys.f.Len()
	d = mat.NewVecDense(n, nil)
	for i, gi := range free {
		d.SetVec(gi, df.AtVec(i))
	}

	var kd mat.VecDense
	kd.MulVec(sys.k, d)
	r = mat.NewVecDense(n, nil)
	r.SubVec(&kd, sys.f)
	return d, r
}

// vecSlice copies a vector into a plain slice.
func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
