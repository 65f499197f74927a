// Package stats summarizes register columns for reporting.
package stats

import "math"

type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes the summary of one numeric column in a single pass
// plus a variance pass. An empty column yields a zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(s.Count)

	varSum := 0.0
	for _, v := range values {
		d := v - s.Mean
		varSum += d * d
	}
	s.StdDev = math.Sqrt(varSum / float64(s.Count))

	return s
}

// NegativeShare is the fraction of values below zero; net pay is not
// clamped, so a run can legitimately contain negative rows.
func NegativeShare(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	negatives := 0
	for _, v := range values {
		if v < 0 {
			negatives++
		}
	}
	return float64(negatives) / float64(len(values))
}
