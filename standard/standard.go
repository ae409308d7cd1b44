package standard

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ejhigson/perfectns/kernel"
	"github.com/ejhigson/perfectns/problem"
	"github.com/ejhigson/perfectns/samples"
)

// Run executes the standard (fixed-nlive) nested-sampling loop: live points
// are replaced one at a time, the lowest-logl point dying on each step,
// until the live set's remaining evidence falls below termination_fraction
// of the evidence already collected.
//
// ctx is checked once per replacement step; a cancelled or expired context
// aborts the run early with the wrapped context error. No cooperative
// scheduling happens mid-step — a step either completes or the run fails.
func Run(ctx context.Context, settings problem.Settings, rng *rand.Rand, opts ...Option) (*samples.Run, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.IsDynamic() {
		return nil, fmt.Errorf("standard: settings select the dynamic driver (dynamic_goal is set)")
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{settings: settings, rng: rng, opts: cfg}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(ctx); err != nil {
		return nil, err
	}
	return r.finalize()
}

// runner holds the mutable state for a single standard-driver execution.
type runner struct {
	settings problem.Settings
	rng      *rand.Rand
	opts     options

	nlive   int
	logxPtr float64

	liveLogL, liveR, liveLogX []float64
	liveTheta                 [][]float64
	liveLabel                 []int

	deadLogL, deadR, deadLogX []float64
	deadTheta                 [][]float64
	deadLabel                 []int

	logzDead float64
}

func logUniform(r *rand.Rand) float64 {
	return math.Log(1 - r.Float64())
}

// init draws the initial nlive live points from the whole prior.
func (r *runner) init() error {
	r.nlive = r.settings.NLiveConst
	r.logxPtr = 0
	r.logzDead = math.Inf(-1)

	cap0 := r.opts.reserveCapacity
	r.deadLogL = make([]float64, 0, cap0)
	r.deadR = make([]float64, 0, cap0)
	r.deadLogX = make([]float64, 0, cap0)
	r.deadTheta = make([][]float64, 0, cap0)
	r.deadLabel = make([]int, 0, cap0)

	r.liveLogL = make([]float64, r.nlive)
	r.liveR = make([]float64, r.nlive)
	r.liveLogX = make([]float64, r.nlive)
	r.liveTheta = make([][]float64, r.nlive)
	r.liveLabel = make([]int, r.nlive)

	p := r.settings.Problem
	for i := 0; i < r.nlive; i++ {
		logx := logUniform(r.rng)
		rad, err := p.RGivenLogX(logx)
		if err != nil {
			return fmt.Errorf("standard: r_given_logx: %w", err)
		}
		logl, err := p.LogLGivenR(rad)
		if err != nil {
			return fmt.Errorf("standard: logl_given_r: %w", err)
		}
		theta, err := kernel.SampleShell(p, rad, r.settings.NDim, r.settings.DimsToSample)
		if err != nil {
			return fmt.Errorf("standard: sample_nsphere_shell: %w", err)
		}
		r.liveLogX[i] = logx
		r.liveR[i] = rad
		r.liveLogL[i] = logl
		r.liveTheta[i] = theta
		r.liveLabel[i] = i + 1
	}
	return nil
}

// process runs replacement steps until the live-evidence termination rule
// fires or ctx is done.
func (r *runner) process(ctx context.Context) error {
	p := r.settings.Problem
	invN := 1.0 / float64(r.nlive)
	logtrapz := math.Log(0.5 * (math.Exp(invN) - math.Exp(-invN)))
	logNLive := math.Log(float64(r.nlive))

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("standard: %w", err)
		}

		idx := minLogLIndex(r.liveLogL)

		dyingLogL := r.liveLogL[idx]
		r.logxPtr -= invN
		contrib := dyingLogL + logtrapz + r.logxPtr
		r.logzDead = kernel.LogSumExp([]float64{r.logzDead, contrib})

		r.deadLogL = append(r.deadLogL, dyingLogL)
		r.deadR = append(r.deadR, r.liveR[idx])
		r.deadLogX = append(r.deadLogX, r.liveLogX[idx])
		r.deadTheta = append(r.deadTheta, r.liveTheta[idx])
		r.deadLabel = append(r.deadLabel, r.liveLabel[idx])

		newLogX := r.liveLogX[idx] + logUniform(r.rng)
		newR, err := p.RGivenLogX(newLogX)
		if err != nil {
			return fmt.Errorf("standard: r_given_logx: %w", err)
		}
		newLogL, err := p.LogLGivenR(newR)
		if err != nil {
			return fmt.Errorf("standard: logl_given_r: %w", err)
		}
		newTheta, err := kernel.SampleShell(p, newR, r.settings.NDim, r.settings.DimsToSample)
		if err != nil {
			return fmt.Errorf("standard: sample_nsphere_shell: %w", err)
		}
		r.liveLogX[idx] = newLogX
		r.liveR[idx] = newR
		r.liveLogL[idx] = newLogL
		r.liveTheta[idx] = newTheta

		logzLive := kernel.LogSumExp(r.liveLogL) + r.logxPtr - logNLive
		if logzLive-math.Log(r.settings.TerminationFraction) <= r.logzDead {
			return nil
		}
	}
}

func minLogLIndex(logl []float64) int {
	best := 0
	for i := 1; i < len(logl); i++ {
		if logl[i] < logl[best] {
			best = i
		}
	}
	return best
}

// finalize appends the remaining live points in ascending logl order,
// assembles the Run, and writes the linearly-decreasing tail of
// NLiveArray.
func (r *runner) finalize() (*samples.Run, error) {
	order := make([]int, r.nlive)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.liveLogL[order[a]] < r.liveLogL[order[b]]
	})

	finalLogL := make([]float64, len(r.deadLogL), len(r.deadLogL)+r.nlive)
	finalR := make([]float64, len(r.deadR), len(r.deadR)+r.nlive)
	finalLogX := make([]float64, len(r.deadLogX), len(r.deadLogX)+r.nlive)
	finalTheta := make([][]float64, len(r.deadTheta), len(r.deadTheta)+r.nlive)
	finalLabel := make([]int, len(r.deadLabel), len(r.deadLabel)+r.nlive)
	copy(finalLogL, r.deadLogL)
	copy(finalR, r.deadR)
	copy(finalLogX, r.deadLogX)
	copy(finalTheta, r.deadTheta)
	copy(finalLabel, r.deadLabel)

	for _, idx := range order {
		finalLogL = append(finalLogL, r.liveLogL[idx])
		finalR = append(finalR, r.liveR[idx])
		finalLogX = append(finalLogX, r.liveLogX[idx])
		finalTheta = append(finalTheta, r.liveTheta[idx])
		finalLabel = append(finalLabel, r.liveLabel[idx])
	}

	n := len(finalLogL)
	nliveArray := make([]int, n)
	nDead := len(r.deadLogL)
	for i := 0; i < nDead; i++ {
		nliveArray[i] = r.nlive
	}
	for j := 1; j <= r.nlive; j++ {
		nliveArray[n-j] = j
	}

	threadMinMax := make([][2]float64, r.nlive)
	lastLogL := make([]float64, r.nlive)
	for i, label := range finalLabel {
		lastLogL[label-1] = finalLogL[i]
	}
	for t := 0; t < r.nlive; t++ {
		threadMinMax[t] = [2]float64{math.NaN(), lastLogL[t]}
	}

	theta := mat.NewDense(n, r.settings.DimsToSample, nil)
	for i, row := range finalTheta {
		theta.SetRow(i, row)
	}

	return samples.NewRun(finalLogL, finalR, finalLogX, finalLabel, theta, nliveArray, threadMinMax, r.settings)
}
