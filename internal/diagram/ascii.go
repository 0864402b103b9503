// Package diagram renders beam response diagrams: ASCII plots for the
// terminal and PNG exports for reports.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/fea"
)

const (
	plotHeight = 12
	plotWidth  = 64
)

// ShearPlot renders the shear force diagram (kN) as an ASCII graph.
func ShearPlot(samples []fea.Sample) string {
	return plotSeries(samples, func(s fea.Sample) float64 { return s.Shear },
		"Shear Force (kN)")
}

// MomentPlot renders the bending moment diagram (kN·m) as an ASCII
// graph.
func MomentPlot(samples []fea.Sample) string {
	return plotSeries(samples, func(s fea.Sample) float64 { return s.Moment },
		"Bending Moment (kN-m)")
}

// DeflectionPlot renders the deflection curve (mm, downward negative)
// as an ASCII graph.
func DeflectionPlot(samples []fea.Sample) string {
	return plotSeries(samples, func(s fea.Sample) float64 { return s.Deflection },
		"Deflection (mm)")
}

func plotSeries(samples []fea.Sample, value func(fea.Sample) float64, caption string) string {
	if len(samples) == 0 {
		return ""
	}
	series := make([]float64, len(samples))
	for i, s := range samples {
		series[i] = value(s)
	}
	return asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a boxed summary for results output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
