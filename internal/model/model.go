// Package model defines the YAML beam definition read by the CLI and
// its conversion into the analysis input. Validation happens here, at
// the caller boundary: the engine receives only normalized, in-range
// values.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/fea"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// Model is the on-disk beam definition.
//
// Either Material (a named material) or E (MPa) must be given; E wins
// when both are present. The section is rectangular by default; when
// Vertices are given the polygon outline is used instead.
type Model struct {
	Span     float64     `yaml:"span"`               // mm
	Material string      `yaml:"material,omitempty"` // e.g. "steel"
	E        float64     `yaml:"e,omitempty"`        // MPa
	Section  SectionSpec `yaml:"section"`

	Supports         []SupportSpec         `yaml:"supports"`
	PointLoads       []PointLoadSpec       `yaml:"pointLoads,omitempty"`
	DistributedLoads []DistributedLoadSpec `yaml:"distributedLoads,omitempty"`
}

// SectionSpec is either a rectangle (width, depth) or a polygon
// outline (vertices).
type SectionSpec struct {
	Width    float64         `yaml:"width,omitempty"` // mm
	Depth    float64         `yaml:"depth,omitempty"` // mm
	Vertices []section.Point `yaml:"vertices,omitempty"`
}

// SupportSpec is a support position and type name.
type SupportSpec struct {
	Position float64 `yaml:"position"` // mm
	Type     string  `yaml:"type"`     // fixed | pinned | roller | free
}

// PointLoadSpec is a concentrated load, downward positive.
type PointLoadSpec struct {
	Position  float64 `yaml:"position"`  // mm
	Magnitude float64 `yaml:"magnitude"` // kN
}

// DistributedLoadSpec is a uniform load over [start, end], downward
// positive.
type DistributedLoadSpec struct {
	Start     float64 `yaml:"start"`     // mm
	End       float64 `yaml:"end"`       // mm
	Intensity float64 `yaml:"intensity"` // kN/m
}

// Load reads and validates a model file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseSupportType maps a support type name onto the closed engine
// enum.
func ParseSupportType(name string) (fea.SupportType, error) {
	switch name {
	case "fixed":
		return fea.Fixed, nil
	case "pinned":
		return fea.Pinned, nil
	case "roller":
		return fea.Roller, nil
	case "free":
		return fea.Free, nil
	}
	return 0, fmt.Errorf("unknown support type %q (want fixed, pinned, roller or free)", name)
}

// Validate checks geometry, materials, support types and load ranges,
// reporting the offending value.
func (m *Model) Validate() error {
	if m.Span <= 0 {
		return fmt.Errorf("span must be positive, got %g", m.Span)
	}
	if m.E == 0 && m.Material == "" {
		return fmt.Errorf("either a material name or an elastic modulus e is required")
	}
	if m.E < 0 {
		return fmt.Errorf("elastic modulus must be positive, got %g", m.E)
	}
	if _, err := m.moment(); err != nil {
		return err
	}

	for _, s := range m.Supports {
		if _, err := ParseSupportType(s.Type); err != nil {
			return err
		}
		if s.Position < 0 || s.Position > m.Span {
			return fmt.Errorf("support position %g outside [0, %g]", s.Position, m.Span)
		}
	}
	for _, p := range m.PointLoads {
		if p.Position < 0 || p.Position > m.Span {
			return fmt.Errorf("point load position %g outside [0, %g]", p.Position, m.Span)
		}
	}
	for _, d := range m.DistributedLoads {
		if d.Start > d.End {
			return fmt.Errorf("distributed load start %g after end %g", d.Start, d.End)
		}
		if d.Start < 0 || d.End > m.Span {
			return fmt.Errorf("distributed load [%g, %g] outside [0, %g]", d.Start, d.End, m.Span)
		}
	}
	return nil
}

// moment resolves the second moment of area of the configured section.
func (m *Model) moment() (float64, error) {
	if len(m.Section.Vertices) > 0 {
		p := section.Polygon{Vertices: m.Section.Vertices}
		if err := p.Validate(); err != nil {
			return 0, err
		}
		return p.MomentOfInertia(), nil
	}
	r := section.Rectangular{Width: m.Section.Width, Depth: m.Section.Depth}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.MomentOfInertia(), nil
}

// Modulus resolves the elastic modulus from E or the material name.
func (m *Model) Modulus() (float64, error) {
	if m.E > 0 {
		return m.E, nil
	}
	return material.Modulus(m.Material)
}

// Beam converts the validated model into the analysis input.
func (m *Model) Beam() (*fea.Beam, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	e, err := m.Modulus()
	if err != nil {
		return nil, err
	}
	i, err := m.moment()
	if err != nil {
		return nil, err
	}

	b := &fea.Beam{Span: m.Span, E: e, I: i}
	for _, s := range m.Supports {
		t, err := ParseSupportType(s.Type)
		if err != nil {
			return nil, err
		}
		b.Supports = append(b.Supports, fea.Support{Position: s.Position, Type: t})
	}
	for _, p := range m.PointLoads {
		b.PointLoads = append(b.PointLoads, fea.PointLoad{Position: p.Position, Magnitude: p.Magnitude})
	}
	for _, d := range m.DistributedLoads {
		b.DistributedLoads = append(b.DistributedLoads, fea.DistributedLoad{Start: d.Start, End: d.End, Intensity: d.Intensity})
	}
	return b, nil
}
