package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/fea"
)

const sampleModel = `
span: 6000
material: steel
section:
  width: 100
  depth: 300
supports:
  - {position: 0, type: pinned}
  - {position: 6000, type: roller}
pointLoads:
  - {position: 3000, magnitude: 10}
distributedLoads:
  - {start: 0, end: 6000, intensity: 5}
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndConvert(t *testing.T) {
	m, err := Load(writeModel(t, sampleModel))
	require.NoError(t, err)

	b, err := m.Beam()
	require.NoError(t, err)

	assert.Equal(t, 6000.0, b.Span)
	assert.Equal(t, 200000.0, b.E)
	assert.InDelta(t, 2.25e8, b.I, 1e-3)
	require.Len(t, b.Supports, 2)
	assert.Equal(t, fea.Pinned, b.Supports[0].Type)
	assert.Equal(t, fea.Roller, b.Supports[1].Type)
	require.Len(t, b.PointLoads, 1)
	assert.Equal(t, 10.0, b.PointLoads[0].Magnitude)
	require.Len(t, b.DistributedLoads, 1)
	assert.Equal(t, 5.0, b.DistributedLoads[0].Intensity)
}

func TestExplicitModulusWins(t *testing.T) {
	m := &Model{
		Span: 1000, Material: "steel", E: 70000,
		Section:  SectionSpec{Width: 50, Depth: 100},
		Supports: []SupportSpec{{Position: 0, Type: "fixed"}},
	}
	b, err := m.Beam()
	require.NoError(t, err)
	assert.Equal(t, 70000.0, b.E)
}

func TestPolygonSection(t *testing.T) {
	m, err := Load(writeModel(t, `
span: 2000
e: 200000
section:
  vertices:
    - {x: 0, y: 0}
    - {x: 100, y: 0}
    - {x: 100, y: 300}
    - {x: 0, y: 300}
supports:
  - {position: 0, type: fixed}
`))
	require.NoError(t, err)

	b, err := m.Beam()
	require.NoError(t, err)
	assert.InDelta(t, 2.25e8, b.I, 1e-3)
}

func TestValidateErrors(t *testing.T) {
	base := func() *Model {
		return &Model{
			Span: 1000, Material: "steel",
			Section:  SectionSpec{Width: 50, Depth: 100},
			Supports: []SupportSpec{{Position: 0, Type: "pinned"}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Model)
	}{
		{"zero span", func(m *Model) { m.Span = 0 }},
		{"no modulus source", func(m *Model) { m.Material = "" }},
		{"bad material", func(m *Model) { m.Material = "unobtainium" }},
		{"bad section", func(m *Model) { m.Section.Depth = 0 }},
		{"bad support type", func(m *Model) { m.Supports[0].Type = "clamped" }},
		{"support out of range", func(m *Model) { m.Supports[0].Position = 1500 }},
		{"point load out of range", func(m *Model) {
			m.PointLoads = []PointLoadSpec{{Position: -5, Magnitude: 1}}
		}},
		{"inverted distributed load", func(m *Model) {
			m.DistributedLoads = []DistributedLoadSpec{{Start: 800, End: 100, Intensity: 1}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			tc.mutate(m)
			_, err := m.Beam()
			assert.Error(t, err)
		})
	}
}

func TestParseSupportType(t *testing.T) {
	for name, want := range map[string]fea.SupportType{
		"fixed": fea.Fixed, "pinned": fea.Pinned, "roller": fea.Roller, "free": fea.Free,
	} {
		got, err := ParseSupportType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSupportType("hinge")
	assert.Error(t, err)
}
