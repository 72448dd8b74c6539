package gradient

import "math"

// RateStats summarizes the switching-rate magnitude of a sampled
// waveform.
type RateStats struct {
	Peak float64 // max |dB/dt| in T/s
	RMS  float64 // root mean square dB/dt in T/s
	Mean float64 // mean |dB/dt| in T/s
}

// Stats computes rate statistics over a sampled waveform. The peak is
// the figure a conservative exposure sweep should use as its MaxRate.
func Stats(series []float64) (RateStats, error) {
	if len(series) == 0 {
		return RateStats{}, ErrEmptySeries
	}

	var peak, sumSq, sumAbs float64

	for _, v := range series {
		a := math.Abs(v)
		if a > peak {
			peak = a
		}

		sumSq += v * v
		sumAbs += a
	}

	n := float64(len(series))

	return RateStats{
		Peak: peak,
		RMS:  mathSqrt(sumSq / n),
		Mean: sumAbs / n,
	}, nil
}
