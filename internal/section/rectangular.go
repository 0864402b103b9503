// Package section provides cross-section geometry for prismatic beams:
// area and second moment of area about the centroidal horizontal axis,
// the only section property the bending analysis needs.
package section

import "fmt"

// Rectangular is a solid rectangular cross-section.
type Rectangular struct {
	Width float64 `yaml:"width"` // b, mm
	Depth float64 `yaml:"depth"` // h, mm
}

// Validate rejects non-positive dimensions.
func (r Rectangular) Validate() error {
	if r.Width <= 0 || r.Depth <= 0 {
		return fmt.Errorf("invalid section dimensions: width=%g, depth=%g", r.Width, r.Depth)
	}
	return nil
}

// Area returns b·h in mm².
func (r Rectangular) Area() float64 {
	return r.Width * r.Depth
}

// MomentOfInertia returns b·h³/12 in mm⁴, about the centroidal
// horizontal axis.
func (r Rectangular) MomentOfInertia() float64 {
	return r.Width * r.Depth * r.Depth * r.Depth / 12
}
