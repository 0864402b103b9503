package fea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanExtrema(t *testing.T) {
	samples := []Sample{
		{X: 0, Shear: 3},
		{X: 100, Shear: -2},
		{X: 200, Shear: 7},
		{X: 300, Shear: -2}, // ties the min; earlier x must win
		{X: 400, Shear: 7},  // ties the max; earlier x must win
	}

	ex := scanExtrema(samples, func(s Sample) float64 { return s.Shear })
	assert.Equal(t, Extrema{Min: -2, MinX: 100, Max: 7, MaxX: 200}, ex)
}

func TestScanExtremaSingle(t *testing.T) {
	ex := scanExtrema([]Sample{{X: 50, Moment: -1.5}}, func(s Sample) float64 { return s.Moment })
	assert.Equal(t, Extrema{Min: -1.5, MinX: 50, Max: -1.5, MaxX: 50}, ex)
}

func TestScanExtremaEmpty(t *testing.T) {
	ex := scanExtrema(nil, func(s Sample) float64 { return s.Shear })
	assert.Equal(t, Extrema{}, ex)
}
