package fea

// scanExtrema finds the signed minimum and maximum of one quantity over
// a sampled series, keeping the x of the first occurrence of each
// (comparisons are strict, so ties keep the earlier position). An empty
// series yields the zero value rather than an error.
func scanExtrema(samples []Sample, value func(Sample) float64) Extrema {
	if len(samples) == 0 {
		return Extrema{}
	}

	v0 := value(samples[0])
	ex := Extrema{Min: v0, MinX: samples[0].X, Max: v0, MaxX: samples[0].X}
	for _, s := range samples[1:] {
		v := value(s)
		if v < ex.Min {
			ex.Min, ex.MinX = v, s.X
		}
		if v > ex.Max {
			ex.Max, ex.MaxX = v, s.X
		}
	}
	return ex
}
