package samples

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ejhigson/perfectns/problem"
)

// Run is the canonical, immutable, in-memory form of a completed nested-
// sampling run: five parallel arrays in ascending-logl order, a theta
// matrix, and per-thread bookkeeping, plus a settings snapshot — a run has
// no external references apart from that embedded settings snapshot.
type Run struct {
	LogL         []float64    // log-likelihood, non-decreasing.
	R            []float64    // radial coordinate.
	LogX         []float64    // each thread's own logx, strictly decreasing within a thread.
	ThreadLabel  []int        // thread that produced sample i, >= 1.
	Theta        *mat.Dense   // rows = len(LogL), cols = Settings.DimsToSample.
	NLiveArray   []int        // local live-point count at each step.
	ThreadMinMax [][2]float64 // [t] = (start logl or NaN, end logl).
	Settings     problem.Settings
}

// NewRun validates that the parallel arrays and Theta agree in shape and
// returns an assembled Run. It does not re-derive NLiveArray or check the
// logl/r/logx/theta consistency invariants — those are the caller's
// (driver's) responsibility and are exercised by the drivers' own tests.
func NewRun(logl, r, logx []float64, threadLabel []int, theta *mat.Dense, nliveArray []int, threadMinMax [][2]float64, settings problem.Settings) (*Run, error) {
	n := len(logl)
	if len(r) != n || len(logx) != n || len(threadLabel) != n || len(nliveArray) != n {
		return nil, fmt.Errorf("%w: logl=%d r=%d logx=%d thread_label=%d nlive_array=%d", ErrShapeMismatch, n, len(r), len(logx), len(threadLabel), len(nliveArray))
	}
	if theta != nil {
		rows, _ := theta.Dims()
		if rows != n {
			return nil, fmt.Errorf("%w: theta has %d rows, want %d", ErrShapeMismatch, rows, n)
		}
	}

	return &Run{
		LogL:         logl,
		R:            r,
		LogX:         logx,
		ThreadLabel:  threadLabel,
		Theta:        theta,
		NLiveArray:   nliveArray,
		ThreadMinMax: threadMinMax,
		Settings:     settings,
	}, nil
}

// NumSamples returns the number of samples in the run.
func (run *Run) NumSamples() int { return len(run.LogL) }

// LogW reconstructs the per-sample log-weight from LogL and NLiveArray. It
// is never stored on Run itself — logw[i] is always derived, not stored.
func (run *Run) LogW() []float64 {
	return ReconstructLogW(run.LogL, run.NLiveArray)
}

// NumThreads returns the number of distinct threads recorded in
// ThreadMinMax.
func (run *Run) NumThreads() int { return len(run.ThreadMinMax) }

// InitialLiveThreads counts threads that began by sampling the whole prior
// (thread_min_max[t][0] is NaN), which is also NLiveArray[0] by
// construction.
func (run *Run) InitialLiveThreads() int {
	count := 0
	for _, mm := range run.ThreadMinMax {
		if math.IsNaN(mm[0]) {
			count++
		}
	}
	return count
}
