package fea

import "gonum.org/v1/gonum/mat"

// sampleDiagrams interpolates deflection, shear and bending moment at
// count+1 equally spaced points along every element and concatenates
// the series in node order.
//
// Per element the end shear V1 and end moment M1 are recovered from
// the local force vector k·d_local − fixedEndLoads. The nodal moment
// DOF is CCW-positive, so the sagging-positive internal moment at the
// left cut is its negation. With w the downward-positive effective
// intensity and x the distance from the element start:
//
//	shear(x)  = V1 − w·x
//	moment(x) = M1 + V1·x − w·x²/2
//
// Deflection uses the Hermite cubic shape functions of the element.
// Shear converts to kN and moment to kN·m; deflection stays in mm.
func sampleDiagrams(sys *system, d *mat.VecDense, count int) []Sample {
	ei := sys.beam.EI()
	var samples []Sample

	for e := 0; e < len(sys.nodes)-1; e++ {
		x0, x1 := sys.nodes[e], sys.nodes[e+1]
		l := x1 - x0
		w := sys.w[e]

		v1, t1 := d.AtVec(2*e), d.AtVec(2*e+1)
		v2, t2 := d.AtVec(2*e+2), d.AtVec(2*e+3)

		ke := elementStiffness(ei, l)
		fe := fixedEndLoads(-w, l)
		dl := []float64{v1, t1, v2, t2}

		var lf [2]float64
		for i := range lf {
			for j := 0; j < 4; j++ {
				lf[i] += ke.At(i, j) * dl[j]
			}
			lf[i] -= fe[i]
		}
		shearEnd := lf[0]   // V1
		momentEnd := -lf[1] // M1, sagging positive

		for s := 0; s <= count; s++ {
			xi := float64(s) / float64(count)
			x := xi * l

			// Fractional stepping drifts; element boundaries are the
			// node positions by definition.
			pos := x0 + x
			if s == count {
				pos = x1
			}

			// Hermite cubic shape functions.
			xi2, xi3 := xi*xi, xi*xi*xi
			n1 := 1 - 3*xi2 + 2*xi3
			n2 := l * (xi - 2*xi2 + xi3)
			n3 := 3*xi2 - 2*xi3
			n4 := l * (xi3 - xi2)

			samples = append(samples, Sample{
				X:          pos,
				Deflection: n1*v1 + n2*t1 + n3*v2 + n4*t2,
				Shear:      (shearEnd - w*x) / 1000,
				Moment:     (momentEnd + shearEnd*x - w*x*x/2) / 1e6,
			})
		}
	}

	// Repeated fractional stepping drifts; the last sample is the end
	// of the beam by construction.
	if len(samples) > 0 {
		samples[len(samples)-1].X = sys.beam.Span
	}
	return samples
}
