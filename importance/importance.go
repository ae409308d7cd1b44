package importance

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// tailWeights returns, for each i, the sum of w[i+1:] — the cumulative
// weight still remaining past i — computed as max(cumsum(w)) - cumsum(w)[i]
// so the last entry comes out exactly 0.
func tailWeights(w []float64) []float64 {
	cumsum := make([]float64, len(w))
	floats.CumSum(cumsum, w)
	total := floats.Max(cumsum)

	tail := make([]float64, len(w))
	for i := range tail {
		tail[i] = total - cumsum[i]
	}
	return tail
}

// ZImportance computes the evidence-focused importance of each sample: the
// tail cumulative weight at i, divided by the local live-point count,
// rescaled so the maximum value is 1.
//
// w must already be normalized relative weights (exp(logw - max(logw))).
func ZImportance(w []float64, nlive []int) []float64 {
	tail := tailWeights(w)
	out := make([]float64, len(w))
	for i := range out {
		out[i] = tail[i] / float64(nlive[i])
	}
	rescaleToMaxOne(out)
	return out
}

// ZImportanceExact is the nlive-weighted variant of ZImportance: in place of
// the flat 1/nlive divisor, it reweights the same tail sum by a rational
// function of the local live-point count and adds a small correction term
// proportional to w[i] itself, before the final max-one rescale. This
// tracks the true sampling-error contribution of each point more closely
// than the flat divisor when nlive varies across the run.
//
// The dynamic driver never calls ZImportanceExact; it always uses
// ZImportance.
func ZImportanceExact(w []float64, nlive []int) []float64 {
	tail := tailWeights(w)
	out := make([]float64, len(w))
	for i := range out {
		n := float64(nlive[i])
		coeff := ((n*n - 3) * math.Pow(n, 1.5)) / (math.Pow(n+1, 3) * math.Pow(n+2, 1.5))
		correction := w[i] * math.Sqrt(n) / math.Pow(n+2, 1.5)
		out[i] = tail[i]*coeff + correction
	}
	rescaleToMaxOne(out)
	return out
}

// PImportance computes the parameter-focused importance of each sample. If
// tuned is false, it returns w normalized to max 1. If tuned is true, it
// uses the first sampled coordinate (theta's column 0) to weight samples by
// their distance from the weighted mean of that coordinate.
func PImportance(theta *mat.Dense, w []float64, tuned bool) []float64 {
	if !tuned {
		out := append([]float64(nil), w...)
		rescaleToMaxOne(out)
		return out
	}

	rows, _ := theta.Dims()
	f := make([]float64, rows)
	for i := 0; i < rows; i++ {
		f[i] = theta.At(i, 0)
	}
	fBar := stat.Mean(f, w)

	out := make([]float64, rows)
	for i := range out {
		out[i] = absFloat(f[i]-fBar) * w[i]
	}
	rescaleToMaxOne(out)
	return out
}

// Blend combines an evidence-focused and a parameter-focused importance
// vector according to dynamic_goal: each input is first normalized by its
// own sum, then combined as (1-goal)*zNorm + goal*pNorm, then rescaled so
// the maximum is 1.
func Blend(goal float64, zImp, pImp []float64) []float64 {
	zSum := floats.Sum(zImp)
	pSum := floats.Sum(pImp)

	out := make([]float64, len(zImp))
	for i := range out {
		out[i] = (1-goal)*(zImp[i]/zSum) + goal*(pImp[i]/pSum)
	}
	rescaleToMaxOne(out)
	return out
}

func rescaleToMaxOne(s []float64) {
	max := floats.Max(s)
	if max == 0 {
		return
	}
	floats.Scale(1/max, s)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
