package dynamic

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ejhigson/perfectns/importance"
	"github.com/ejhigson/perfectns/problem"
	"github.com/ejhigson/perfectns/samples"
	"github.com/ejhigson/perfectns/standard"
	"github.com/ejhigson/perfectns/thread"
)

// Run executes the dynamic (importance-driven) nested-sampling driver: an
// initial exploratory run at nInit live points, followed by repeated
// insertion of new threads in the regions the chosen importance function
// (evidence, parameter, or a blend, per settings.DynamicGoal) flags as
// undersampled, until the sample budget is exhausted.
func Run(ctx context.Context, settings problem.Settings, rng *rand.Rand, opts ...Option) (*samples.Run, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.IsDynamic() {
		return nil, fmt.Errorf("dynamic: settings do not select the dynamic driver (dynamic_goal is unset)")
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	exploratorySettings := settings
	exploratorySettings.DynamicGoal = nil
	exploratorySettings.NLiveConst = settings.NInit
	exploratoryRun, err := standard.Run(ctx, exploratorySettings, rng)
	if err != nil {
		return nil, fmt.Errorf("dynamic: exploratory run: %w", err)
	}

	m, threadMinMax := matrixFromRun(exploratoryRun)
	if cfg.reserveCapacity > 0 {
		m.Reserve(m.Len() + cfg.reserveCapacity)
	}

	nSamples := m.Len()
	nSamplesMax := settings.NSamplesMax
	if nSamplesMax == 0 {
		nSamplesMax = int(math.Round(float64(nSamples) * float64(settings.NLiveConst) / float64(settings.NInit)))
	}
	if cfg.reserveCapacity == 0 {
		m.Reserve(nSamplesMax)
	}

	nextLabel := settings.NInit + 1
	goal := *settings.DynamicGoal

	for nSamples < nSamplesMax {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dynamic: %w", err)
		}

		initialLive := 0
		for _, mm := range threadMinMax {
			if math.IsNaN(mm[0]) {
				initialLive++
			}
		}
		nliveArray := samples.ReconstructNLive(initialLive, m.DNLive)
		logw := samples.ReconstructLogW(m.LogL, nliveArray)

		maxLogW := floats.Max(logw)
		w := make([]float64, len(logw))
		for i, lw := range logw {
			w[i] = math.Exp(lw - maxLogW)
		}

		imp := importanceVector(goal, settings.TunedDynamicP, w, nliveArray, m)

		lo, hi, found := importanceBracket(imp, settings.DynamicFraction)
		if !found {
			break
		}

		logxMin, logxMax, logLMin := bracketBounds(m, lo, hi)

		for b := 0; b < settings.NBatch; b++ {
			th, err := thread.Generate(rng, settings.Problem, logxMin, logxMax, true, nextLabel, settings.NDim, settings.DimsToSample)
			if err != nil {
				return nil, fmt.Errorf("dynamic: thread generation: %w", err)
			}
			nextLabel++

			if !math.IsNaN(logLMin) {
				m.AddDNLive(lo-1, 1)
			}
			for i := 0; i < th.Len(); i++ {
				m.Append(th.LogL[i], th.R[i], th.LogX[i], th.Label, th.DNLive[i], th.Theta[i])
			}
			threadMinMax = append(threadMinMax, [2]float64{logLMin, th.LogL[th.Len()-1]})
		}

		m.SortByLogL()
		nSamples = m.Len()
	}

	return m.ToRun(threadMinMax, settings)
}

// matrixFromRun converts a completed standard Run (the exploratory run)
// into a mutable Matrix with a per-row birth/death delta column, derived
// from the Run's already-reconstructed NLiveArray.
func matrixFromRun(run *samples.Run) (*samples.Matrix, [][2]float64) {
	n := run.NumSamples()
	m := samples.NewMatrix()
	m.Reserve(n)

	dims := run.Settings.DimsToSample
	row := make([]float64, dims)
	for i := 0; i < n; i++ {
		run.Theta.Row(row, i)
		theta := append([]float64(nil), row...)

		dNLive := 0
		if i < n-1 {
			dNLive = run.NLiveArray[i+1] - run.NLiveArray[i]
		} else {
			dNLive = -1
		}
		m.Append(run.LogL[i], run.R[i], run.LogX[i], run.ThreadLabel[i], dNLive, theta)
	}

	threadMinMax := make([][2]float64, len(run.ThreadMinMax))
	copy(threadMinMax, run.ThreadMinMax)
	return m, threadMinMax
}

// importanceVector computes the importance vector selected by goal: 0 is
// pure evidence importance, 1 is pure parameter importance, and anything in
// between blends the two.
func importanceVector(goal float64, tuned bool, w []float64, nlive []int, m *samples.Matrix) []float64 {
	if goal == 0 {
		return importance.ZImportance(w, nlive)
	}

	theta := denseFromRows(m.Theta)
	if goal == 1 {
		return importance.PImportance(theta, w, tuned)
	}

	z := importance.ZImportance(w, nlive)
	p := importance.PImportance(theta, w, tuned)
	return importance.Blend(goal, z, p)
}

// denseFromRows copies a slice-of-rows theta matrix into a *mat.Dense, the
// form importance.PImportance's tuned branch reads a column from.
func denseFromRows(rows [][]float64) *mat.Dense {
	n := len(rows)
	if n == 0 {
		return mat.NewDense(0, 0, nil)
	}
	dims := len(rows[0])
	d := mat.NewDense(n, dims, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d
}

// importanceBracket finds the first and last indices whose importance
// exceeds threshold. found is false if no index qualifies.
func importanceBracket(imp []float64, threshold float64) (lo, hi int, found bool) {
	lo, hi = -1, -1
	for i, v := range imp {
		if v > threshold {
			if lo == -1 {
				lo = i
			}
			hi = i
		}
	}
	return lo, hi, lo != -1
}

// bracketBounds determines the insertion interval's logx bounds and the
// logl value marking its lower edge (NaN if the bracket reaches the start
// of the matrix, i.e. the insertion should start from the whole prior).
func bracketBounds(m *samples.Matrix, lo, hi int) (logxMin, logxMax, logLMin float64) {
	if lo == 0 {
		logLMin = math.NaN()
		logxMin = 0
	} else {
		logLMin = m.LogL[lo-1]
		logxMin = m.LogX[lo-1]
	}

	if hi == m.Len()-1 {
		logxMax = m.LogX[hi]
	} else {
		logxMax = m.LogX[hi+1]
	}
	return logxMin, logxMax, logLMin
}
