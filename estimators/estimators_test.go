package estimators_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ejhigson/perfectns/estimators"
	"github.com/ejhigson/perfectns/internal/gaussfixture"
	"github.com/ejhigson/perfectns/problem"
	"github.com/ejhigson/perfectns/samples"
	"github.com/ejhigson/perfectns/standard"
)

func runSettings(r *rand.Rand) problem.Settings {
	return problem.Settings{
		NDim:                1,
		DimsToSample:        1,
		NLiveConst:          50,
		TerminationFraction: 1e-3,
		Problem: gaussfixture.GaussGauss{
			NDim:            1,
			LikelihoodSigma: 1,
			PriorSigma:      10,
			RNG:             r,
		},
	}
}

func TestLogZEstimator_MatchesAnalyticWithinTolerance(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	settings := runSettings(r)
	run, err := standard.Run(context.Background(), settings, r)
	require.NoError(t, err)

	logw := run.LogW()
	got, err := (estimators.LogZEstimator{}).Estimate(logw, run)
	require.NoError(t, err)

	want, err := (estimators.LogZEstimator{}).Analytical(settings)
	require.NoError(t, err)

	require.InDelta(t, want, got, 0.5)
}

func TestRadialMeanEstimator_AnalyticalIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	settings := runSettings(r)
	v, err := (estimators.RadialMeanEstimator{}).Analytical(settings)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestNumSamplesEstimator_HasNoAnalyticalCapability(t *testing.T) {
	var e estimators.Estimator = estimators.NumSamplesEstimator{}
	_, ok := e.(estimators.Analytical)
	require.False(t, ok)
}

func TestParamCredEstimator_MedianIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	settings := runSettings(r)
	v, err := (estimators.ParamCredEstimator{P: 0.5, K: 0}).Analytical(settings)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestParamCredEstimator_MonotonicInP(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	settings := runSettings(r)
	run, err := standard.Run(context.Background(), settings, r)
	require.NoError(t, err)
	logw := run.LogW()

	lo, err := (estimators.ParamCredEstimator{P: 0.1, K: 0}).Estimate(logw, run)
	require.NoError(t, err)
	mid, err := (estimators.ParamCredEstimator{P: 0.5, K: 0}).Estimate(logw, run)
	require.NoError(t, err)
	hi, err := (estimators.ParamCredEstimator{P: 0.9, K: 0}).Estimate(logw, run)
	require.NoError(t, err)

	require.Less(t, lo, mid)
	require.Less(t, mid, hi)
}

func TestParamSquaredMeanEstimator_AnalyticalConverges(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	settings := runSettings(r)
	v, err := (estimators.ParamSquaredMeanEstimator{K: 0}).Analytical(settings)
	require.NoError(t, err)
	require.Greater(t, v, 0.0)
}

func TestTable_ConvertsNotApplicableToNaN(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	settings := runSettings(r)
	run, err := standard.Run(context.Background(), settings, r)
	require.NoError(t, err)
	logw := run.LogW()

	rows, err := estimators.Table([]estimators.Estimator{
		estimators.NumSamplesEstimator{},
		estimators.LogZEstimator{},
	}, logw, run, settings)
	require.NoError(t, err)

	require.Equal(t, "n_samples", rows[0].Name)
	require.True(t, math.IsNaN(rows[0].Analytic))
	require.False(t, math.IsNaN(rows[1].Analytic))
}

func TestRadialCredEstimator_MatchesRawCDFAtEndpoints(t *testing.T) {
	run := &samples.Run{
		R:    []float64{1, 2, 3, 4},
		Theta: mat.NewDense(4, 1, []float64{1, 2, 3, 4}),
	}
	logw := []float64{0, 0, 0, 0}
	lo, err := (estimators.RadialCredEstimator{P: 0}).Estimate(logw, run)
	require.NoError(t, err)
	require.Equal(t, 1.0, lo)

	hi, err := (estimators.RadialCredEstimator{P: 1}).Estimate(logw, run)
	require.NoError(t, err)
	require.Equal(t, 4.0, hi)
}
