package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSumExp returns log(Σ exp(xs[i])) computed in a numerically stable way.
// An empty slice returns math.Inf(-1), the log of an empty sum (zero).
//
// This wraps gonum/floats.LogSumExp rather than re-deriving the max-shift
// trick by hand: the stability argument is identical, and gonum is already
// the numeric library this module reaches for elsewhere.
func LogSumExp(xs []float64) float64 {
	if len(xs) == 0 {
		return math.Inf(-1)
	}

	return floats.LogSumExp(xs)
}

// ShellSampler is the narrow collaborator surface the thread generator and
// drivers need: "give me a point on the n-sphere shell of radius r". It is
// a subset of problem.Problem's full contract, kept separate so SampleShell
// depends only on this surface rather than on the whole likelihood/prior
// interface.
type ShellSampler interface {
	// SampleNSphereShell returns a uniformly sampled point on the n-sphere
	// of radius r in nDim dimensions, truncated to the first dimsToSample
	// coordinates.
	SampleNSphereShell(r float64, nDim, dimsToSample int) ([]float64, error)
}

// SampleShell validates dimsToSample against nDim and delegates to the
// collaborator. It exists so every caller gets the same bounds check rather
// than repeating it at each call site.
func SampleShell(s ShellSampler, r float64, nDim, dimsToSample int) ([]float64, error) {
	if dimsToSample <= 0 || dimsToSample > nDim {
		return nil, fmt.Errorf("kernel: dims_to_sample %d out of range for n_dim %d", dimsToSample, nDim)
	}

	return s.SampleNSphereShell(r, nDim, dimsToSample)
}
