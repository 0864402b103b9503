// Package fea implements static analysis of straight prismatic beams by
// the direct stiffness method with 2-node Euler–Bernoulli elements
// (two degrees of freedom per node: vertical displacement and rotation).
//
// Internal units are N and mm throughout (E in MPa ≡ N/mm², I in mm⁴).
// Point-load magnitudes are given in kN and distributed-load intensities
// in kN/m, both downward positive; 1 kN/m equals 1 N/mm, so intensities
// pass through unscaled while point loads are multiplied by 1000.
//
// The internal vertical axis is upward positive: downward loads are
// negated when they enter the force vector. As a result support
// reactions under downward load come out positive (acting upward),
// sagging bending moment is positive and downward deflection is
// negative.
package fea

// SupportType is the closed set of support kinds and determines which
// degrees of freedom are constrained at the support's node.
type SupportType int

const (
	// Free constrains nothing. It is a placeholder that only forces a
	// mesh node at its position, useful to sample a point of interest.
	Free SupportType = iota
	// Roller constrains vertical displacement.
	Roller
	// Pinned constrains vertical displacement.
	Pinned
	// Fixed constrains vertical displacement and rotation.
	Fixed
)

// String returns the lowercase name of the support type.
func (t SupportType) String() string {
	switch t {
	case Free:
		return "free"
	case Roller:
		return "roller"
	case Pinned:
		return "pinned"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Support is a point support on the beam axis.
type Support struct {
	Position float64 // mm from the left end
	Type     SupportType
}

// PointLoad is a concentrated transverse load.
type PointLoad struct {
	Position  float64 // mm from the left end
	Magnitude float64 // kN, downward positive
}

// DistributedLoad is a uniformly distributed transverse load over
// [Start, End]. It contributes only to elements it fully covers.
type DistributedLoad struct {
	Start     float64 // mm
	End       float64 // mm, Start <= End
	Intensity float64 // kN/m, downward positive
}

// Beam is the immutable input to Solve.
type Beam struct {
	Span             float64 // mm, > 0
	E                float64 // MPa
	I                float64 // mm⁴
	Supports         []Support
	PointLoads       []PointLoad
	DistributedLoads []DistributedLoad
}

// EI returns the flexural rigidity in N·mm².
func (b *Beam) EI() float64 { return b.E * b.I }

// Sample is one point of the sampled response diagrams.
type Sample struct {
	X          float64 // mm from the left end
	Deflection float64 // mm, downward negative
	Shear      float64 // kN
	Moment     float64 // kN·m, sagging positive
}

// Extrema holds the signed minimum and maximum of a sampled series and
// the positions of their first occurrence.
type Extrema struct {
	Min  float64
	MinX float64
	Max  float64
	MaxX float64
}

// Result is the full response of one analysis run.
//
// Displacements and Reactions are indexed by global DOF: entry 2i is
// the vertical DOF of node i, entry 2i+1 its rotational DOF.
// Displacements are in mm and rad; reactions in N and N·mm. Reaction
// entries at free DOFs are numerically ~0 (equilibrium); entries at
// constrained DOFs are the physical support reactions.
type Result struct {
	NodePositions []float64
	Displacements []float64
	Reactions     []float64
	Samples       []Sample

	Deflection Extrema // mm
	Shear      Extrema // kN
	Moment     Extrema // kN·m
}

// DefaultSampleCount is the number of sub-intervals sampled per element
// when the caller does not ask for a specific resolution.
const DefaultSampleCount = 20

// Solve runs a complete analysis: mesh construction, assembly,
// boundary-condition reduction, linear solve, response recovery and
// diagram sampling. It is a pure function of its inputs; the Beam is
// not mutated. sampleCount is the number of sub-intervals per element
// (DefaultSampleCount if <= 0).
func Solve(b *Beam, sampleCount int) (*Result, error) {
	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	nodes, err := buildMesh(b)
	if err != nil {
		return nil, err
	}

	sys := assemble(b, nodes)

	free, _ := partition(b, nodes)

	kff, ff := reduce(sys.k, sys.f, free)
	df, err := solveGauss(kff, ff)
	if err != nil {
		return nil, err
	}

	d, r := recoverResponse(sys, free, df)
	samples := sampleDiagrams(sys, d, sampleCount)

	res := &Result{
		NodePositions: nodes,
		Displacements: vecSlice(d),
		Reactions:     vecSlice(r),
		Samples:       samples,
		Deflection:    scanExtrema(samples, func(s Sample) float64 { return s.Deflection }),
		Shear:         scanExtrema(samples, func(s Sample) float64 { return s.Shear }),
		Moment:        scanExtrema(samples, func(s Sample) float64 { return s.Moment }),
	}
	return res, nil
}
