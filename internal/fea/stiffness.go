package fea

import "gonum.org/v1/gonum/mat"

// elementStiffness returns the 4×4 local stiffness matrix of a 2-node
// Euler–Bernoulli beam element of length l (mm) and flexural rigidity
// ei (N·mm²). DOF order: [v1, θ1, v2, θ2]. Symmetric and positive
// semi-definite by construction.
func elementStiffness(ei, l float64) *mat.Dense {
	c := ei / (l * l * l)
	return mat.NewDense(4, 4, []float64{
		12 * c, 6 * l * c, -12 * c, 6 * l * c,
		6 * l * c, 4 * l * l * c, -6 * l * c, 2 * l * l * c,
		-12 * c, -6 * l * c, 12 * c, -6 * l * c,
		6 * l * c, 2 * l * l * c, -6 * l * c, 4 * l * l * c,
	})
}

// fixedEndLoads returns the equivalent nodal load vector of a uniform
// transverse load w (force per unit length, in the force axis of the
// global vector) over the whole element: [wL/2, wL²/12, wL/2, −wL²/12].
func fixedEndLoads(w, l float64) [4]float64 {
	return [4]float64{
		w * l / 2,
		w * l * l / 12,
		w * l / 2,
		-w * l * l / 12,
	}
}
