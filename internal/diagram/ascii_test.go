package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gobeam/internal/fea"
)

func TestPlotsRenderSeries(t *testing.T) {
	samples := []fea.Sample{
		{X: 0, Shear: 5, Moment: 0, Deflection: 0},
		{X: 1000, Shear: 0, Moment: 2.5, Deflection: -0.02},
		{X: 2000, Shear: -5, Moment: 0, Deflection: 0},
	}

	assert.Contains(t, ShearPlot(samples), "Shear Force (kN)")
	assert.Contains(t, MomentPlot(samples), "Bending Moment (kN-m)")
	assert.Contains(t, DeflectionPlot(samples), "Deflection (mm)")
}

func TestPlotsEmptySeries(t *testing.T) {
	assert.Empty(t, ShearPlot(nil))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTS", []string{"a", "longer line"})
	assert.Contains(t, out, "RESULTS")
	assert.Contains(t, out, "longer line")
	// Top, title, separator, two content lines, bottom.
	assert.Equal(t, 6, strings.Count(out, "\n"))
}
