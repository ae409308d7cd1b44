package samples

import "math"

// ReconstructNLive turns a per-row birth/death delta column into the local
// live-point count at each row:
//
//	nlive_array[0]   = initialLive
//	nlive_array[i]   = nlive_array[i-1] + dNLive[i-1]   for i >= 1
//
// A thread's birth is recorded as +1 on the row it is born *at* (the
// existing sample whose logx marks the start of its interval), and a
// thread's death as -1 on its own final row. Both take effect starting at
// the *next* row: the row that hosts the birth or death marker was itself
// sampled under the live-point count that preceded the event. This one-row
// lag is what makes the standard driver's finalization tail
// ("nlive_array[-j] = j") fall out of the same formula used for
// dynamically inserted threads, rather than needing a special case.
func ReconstructNLive(initialLive int, dNLive []int) []int {
	out := make([]int, len(dNLive))
	cur := initialLive
	for i, delta := range dNLive {
		out[i] = cur
		cur += delta
	}
	return out
}

// ReconstructLogW derives the per-sample log-weight from logl and the
// local live-point count, by trapezoidal quadrature of the geometric
// shrinkage volume model, generalized to a per-step nlive rather than a
// single run-wide constant so it also covers dynamic runs where
// nlive_array varies across inserted threads.
//
// A running log-volume pointer is decremented by 1/nlive[i] at each step
// (the expected log-shrinkage of a draw from nlive[i] points), then each
// sample's weight is its log-likelihood plus the trapezoidal correction for
// the geometric series plus the volume pointer *after* that step's
// decrement — exactly the standard driver's own bookkeeping (decrement
// logx_i, then use it), generalized to a varying nlive.
func ReconstructLogW(logl []float64, nlive []int) []float64 {
	out := make([]float64, len(logl))
	logx := 0.0
	for i, n := range nlive {
		invN := 1.0 / float64(n)
		logx -= invN
		logtrapz := math.Log(0.5 * (math.Exp(invN) - math.Exp(-invN)))
		out[i] = logl[i] + logtrapz + logx
	}
	return out
}
