package estimators

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ejhigson/perfectns/kernel"
	"github.com/ejhigson/perfectns/problem"
	"github.com/ejhigson/perfectns/samples"
)

// Estimator computes a single summary quantity from a run's log-weights.
type Estimator interface {
	Name() string
	Label() string
	Estimate(logw []float64, run *samples.Run) (float64, error)
}

// Analytical is the optional capability an Estimator implements when it
// can also produce a closed-form reference value for a given settings
// object (which may or may not be available, depending on the wired
// problem collaborator).
type Analytical interface {
	Analytical(settings problem.Settings) (float64, error)
}

func normalizeWeights(logw []float64) []float64 {
	maxLogW := floats.Max(logw)
	w := make([]float64, len(logw))
	for i, lw := range logw {
		w[i] = math.Exp(lw - maxLogW)
	}
	return w
}

// LogZEstimator is the log-evidence estimator.
type LogZEstimator struct{}

func (LogZEstimator) Name() string  { return "logz" }
func (LogZEstimator) Label() string { return "log Z" }

func (LogZEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	return kernel.LogSumExp(logw), nil
}

func (LogZEstimator) Analytical(settings problem.Settings) (float64, error) {
	a, err := settings.RequireAnalyticEvidence()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotApplicable, err)
	}
	return a.LogZAnalytic()
}

// ZEstimator is the evidence estimator, exp(LogZ).
type ZEstimator struct{}

func (ZEstimator) Name() string  { return "z" }
func (ZEstimator) Label() string { return "Z" }

func (ZEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	lz, err := (LogZEstimator{}).Estimate(logw, run)
	if err != nil {
		return 0, err
	}
	return math.Exp(lz), nil
}

func (ZEstimator) Analytical(settings problem.Settings) (float64, error) {
	lz, err := (LogZEstimator{}).Analytical(settings)
	if err != nil {
		return 0, err
	}
	return math.Exp(lz), nil
}

// NumSamplesEstimator returns the number of samples in the run. It has no
// analytic reference.
type NumSamplesEstimator struct{}

func (NumSamplesEstimator) Name() string  { return "n_samples" }
func (NumSamplesEstimator) Label() string { return "# samples" }

func (NumSamplesEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	return float64(len(logw)), nil
}

// RadialMeanEstimator is the weighted mean radius, Σ w·r / Σ w.
type RadialMeanEstimator struct{}

func (RadialMeanEstimator) Name() string  { return "radial_mean" }
func (RadialMeanEstimator) Label() string { return "E[r]" }

func (RadialMeanEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	w := normalizeWeights(logw)
	return stat.Mean(run.R, w), nil
}

// Analytical is always 0, by the spherical symmetry every collaborator in
// this domain shares; it does not depend on any problem-specific
// capability.
func (RadialMeanEstimator) Analytical(settings problem.Settings) (float64, error) {
	return 0, nil
}

// ParamMeanEstimator is the weighted mean of theta's K-th coordinate.
type ParamMeanEstimator struct{ K int }

func (e ParamMeanEstimator) Name() string  { return fmt.Sprintf("param_mean_%d", e.K) }
func (e ParamMeanEstimator) Label() string { return fmt.Sprintf("E[theta_%d]", e.K) }

func (e ParamMeanEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	w := normalizeWeights(logw)
	col := mat.Col(nil, e.K, run.Theta)
	return stat.Mean(col, w), nil
}

func (e ParamMeanEstimator) Analytical(settings problem.Settings) (float64, error) {
	return 0, nil
}

// ParamSquaredMeanEstimator is the weighted mean of theta's K-th
// coordinate squared.
type ParamSquaredMeanEstimator struct{ K int }

func (e ParamSquaredMeanEstimator) Name() string  { return fmt.Sprintf("param_squared_mean_%d", e.K) }
func (e ParamSquaredMeanEstimator) Label() string { return fmt.Sprintf("E[theta_%d^2]", e.K) }

func (e ParamSquaredMeanEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	w := normalizeWeights(logw)
	sumW := floats.Sum(w)
	col := mat.Col(nil, e.K, run.Theta)
	total := 0.0
	for i, v := range col {
		total += w[i] * v * v
	}
	return total / sumW, nil
}

// FTilde returns r(logx)^2/n_dim, the iso-likelihood-contour average of
// theta_k^2 under spherical symmetry.
func (e ParamSquaredMeanEstimator) FTilde(logx float64, settings problem.Settings) (float64, error) {
	r, err := settings.Problem.RGivenLogX(logx)
	if err != nil {
		return 0, err
	}
	return r * r / float64(settings.NDim), nil
}

func (e ParamSquaredMeanEstimator) Analytical(settings problem.Settings) (float64, error) {
	return analyticIntegral(e, settings)
}

// RadialCredEstimator is the P-th credible value of the radial
// coordinate. It has no analytic reference.
type RadialCredEstimator struct{ P float64 }

func (e RadialCredEstimator) Name() string  { return fmt.Sprintf("radial_cred_%.3f", e.P) }
func (e RadialCredEstimator) Label() string { return fmt.Sprintf("r[%.0f%%]", e.P*100) }

func (e RadialCredEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	w := normalizeWeights(logw)
	values, cdf := rawCDF(run.R, w)
	return interpolateAtP(values, cdf, e.P), nil
}

// combinedSigmaProvider is the narrow capability a problem collaborator
// implements to expose the conjugate-Gaussian posterior's combined scale,
// used by ParamCredEstimator's analytic branch.
type combinedSigmaProvider interface {
	CombinedPosteriorSigma() float64
}

// ParamCredEstimator is the P-th credible value of theta's K-th
// coordinate.
type ParamCredEstimator struct {
	P float64
	K int
}

func (e ParamCredEstimator) Name() string {
	return fmt.Sprintf("param_cred_%d_%.3f", e.K, e.P)
}
func (e ParamCredEstimator) Label() string {
	return fmt.Sprintf("theta_%d[%.0f%%]", e.K, e.P*100)
}

func (e ParamCredEstimator) Estimate(logw []float64, run *samples.Run) (float64, error) {
	w := normalizeWeights(logw)
	col := mat.Col(nil, e.K, run.Theta)
	values, cdf := rawCDF(col, w)
	return interpolateAtP(values, cdf, e.P), nil
}

func (e ParamCredEstimator) Analytical(settings problem.Settings) (float64, error) {
	g, ok := settings.Problem.(combinedSigmaProvider)
	if !ok {
		return 0, fmt.Errorf("%w: collaborator has no combined posterior sigma", ErrNotApplicable)
	}
	if e.P == 0.5 {
		return 0, nil
	}
	sigma := g.CombinedPosteriorSigma()
	dist := distuv.Normal{Mu: 0, Sigma: sigma}
	return dist.Quantile(e.P), nil
}

// Row is one line of a reference table: an estimator's numerical estimate
// alongside its analytic reference (NaN when unavailable).
type Row struct {
	Name     string
	Label    string
	Value    float64
	Analytic float64
}

// Table evaluates every estimator against logw/run, converting a
// not-applicable analytic value into NaN rather than failing the whole
// table.
func Table(ests []Estimator, logw []float64, run *samples.Run, settings problem.Settings) ([]Row, error) {
	rows := make([]Row, len(ests))
	for i, e := range ests {
		v, err := e.Estimate(logw, run)
		if err != nil {
			return nil, fmt.Errorf("estimators: %s: %w", e.Name(), err)
		}

		analytic := math.NaN()
		if a, ok := e.(Analytical); ok {
			av, err := a.Analytical(settings)
			if err != nil {
				if !errors.Is(err, ErrNotApplicable) {
					return nil, fmt.Errorf("estimators: %s analytic: %w", e.Name(), err)
				}
			} else {
				analytic = av
			}
		}

		rows[i] = Row{Name: e.Name(), Label: e.Label(), Value: v, Analytic: analytic}
	}
	return rows, nil
}
