package section

import (
	"fmt"
	"math"
)

// Point is a vertex of a polygonal cross-section outline.
type Point struct {
	X float64 `yaml:"x"` // mm
	Y float64 `yaml:"y"` // mm
}

// Polygon is an arbitrary simple polygonal cross-section given as an
// ordered vertex loop (either winding direction). The section is still
// prismatic; this only generalizes how its second moment of area is
// obtained.
type Polygon struct {
	Vertices []Point `yaml:"vertices"`
}

// Validate rejects polygons with fewer than three vertices or zero area.
func (p Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return fmt.Errorf("polygon section needs at least 3 vertices, got %d", len(p.Vertices))
	}
	if p.Area() <= 0 {
		return fmt.Errorf("polygon section has zero area")
	}
	return nil
}

// Area returns the enclosed area in mm², by the shoelace formula.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

func (p Polygon) signedArea() float64 {
	var sum float64
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return sum / 2
}

// Centroid returns the centroid of the enclosed area.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	a := p.signedArea()
	if a == 0 {
		return Point{}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// MomentOfInertia returns the second moment of area about the
// centroidal horizontal axis, in mm⁴. The shoelace sum gives the
// moment about y=0; the parallel-axis term shifts it to the centroid.
func (p Polygon) MomentOfInertia() float64 {
	n := len(p.Vertices)
	a := p.signedArea()
	if a == 0 {
		return 0
	}

	var ix float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		yi, yj := p.Vertices[i].Y, p.Vertices[j].Y
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		ix += (yi*yi + yi*yj + yj*yj) * cross
	}
	ix /= 12

	cy := p.Centroid().Y
	return math.Abs(ix - a*cy*cy)
}
