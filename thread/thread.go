package thread

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ejhigson/perfectns/kernel"
	"github.com/ejhigson/perfectns/problem"
)

// Thread is a single-live-point trajectory: one row per retained sample,
// in order of strictly decreasing LogX (equivalently non-decreasing LogL).
type Thread struct {
	Label  int
	LogX   []float64
	R      []float64
	LogL   []float64
	Theta  [][]float64
	DNLive []int // 0 everywhere except -1 on the final row (death marker).
}

// Len returns the number of retained samples.
func (t *Thread) Len() int { return len(t.LogX) }

// logUniform draws log(U) for U ~ Uniform(0,1], matching the prior-volume
// shrinkage draws used throughout the core (the distribution, not
// rand.Float64's native [0,1) range, must exclude 0 so log(U) is finite).
func logUniform(r *rand.Rand) float64 {
	return math.Log(1 - r.Float64())
}

// Generate produces the logx trajectory of a single-live-point run over
// (logxEnd, logxStart], then materializes r, logl, and theta from the
// collaborator.
//
//	lx0 = logxStart + log(U0)
//	lxk = lxk-1 + log(Uk)     until lxk <= logxEnd
//
// If keepFinalPoint is false, the terminating element (the one that
// crossed logxEnd) is discarded.
func Generate(r *rand.Rand, p problem.Problem, logxStart, logxEnd float64, keepFinalPoint bool, label, nDim, dimsToSample int) (*Thread, error) {
	if logxStart <= logxEnd {
		return nil, fmt.Errorf("%w: logx_start=%v logx_end=%v", ErrInvalidInterval, logxStart, logxEnd)
	}

	var logxs []float64
	lx := logxStart + logUniform(r)
	for {
		logxs = append(logxs, lx)
		if lx <= logxEnd {
			break
		}
		lx += logUniform(r)
	}
	if !keepFinalPoint {
		logxs = logxs[:len(logxs)-1]
	}
	if len(logxs) == 0 {
		return nil, ErrEmptyThread
	}

	n := len(logxs)
	rs := make([]float64, n)
	logl := make([]float64, n)
	theta := make([][]float64, n)
	for i, lx := range logxs {
		rv, err := p.RGivenLogX(lx)
		if err != nil {
			return nil, fmt.Errorf("thread: r_given_logx(%v): %w", lx, err)
		}
		lv, err := p.LogLGivenR(rv)
		if err != nil {
			return nil, fmt.Errorf("thread: logl_given_r(%v): %w", rv, err)
		}
		th, err := kernel.SampleShell(p, rv, nDim, dimsToSample)
		if err != nil {
			return nil, fmt.Errorf("thread: sample_nsphere_shell(%v): %w", rv, err)
		}
		rs[i] = rv
		logl[i] = lv
		theta[i] = th
	}

	dNLive := make([]int, n)
	dNLive[n-1] = -1

	return &Thread{
		Label:  label,
		LogX:   logxs,
		R:      rs,
		LogL:   logl,
		Theta:  theta,
		DNLive: dNLive,
	}, nil
}
