package dynamic_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejhigson/perfectns/dynamic"
	"github.com/ejhigson/perfectns/internal/gaussfixture"
	"github.com/ejhigson/perfectns/problem"
)

func baseSettings(r *rand.Rand, goal float64) problem.Settings {
	g := goal
	return problem.Settings{
		NDim:                1,
		DimsToSample:        1,
		NLiveConst:          40,
		NInit:               10,
		TerminationFraction: 1e-2,
		DynamicGoal:         &g,
		NBatch:              1,
		DynamicFraction:     0.5,
		Problem: gaussfixture.GaussGauss{
			NDim:            1,
			LikelihoodSigma: 1,
			PriorSigma:      10,
			RNG:             r,
		},
	}
}

func TestRun_EvidenceGoal_ProducesOrderedRun(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	run, err := dynamic.Run(context.Background(), baseSettings(r, 0), r)
	require.NoError(t, err)
	require.Greater(t, run.NumSamples(), 10)
	for i := 1; i < run.NumSamples(); i++ {
		require.LessOrEqual(t, run.LogL[i-1], run.LogL[i])
	}
}

func TestRun_ParameterGoal_ProducesOrderedRun(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	run, err := dynamic.Run(context.Background(), baseSettings(r, 1), r)
	require.NoError(t, err)
	for i := 1; i < run.NumSamples(); i++ {
		require.LessOrEqual(t, run.LogL[i-1], run.LogL[i])
	}
}

func TestRun_BlendedGoal_ProducesOrderedRun(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	run, err := dynamic.Run(context.Background(), baseSettings(r, 0.5), r)
	require.NoError(t, err)
	for i := 1; i < run.NumSamples(); i++ {
		require.LessOrEqual(t, run.LogL[i-1], run.LogL[i])
	}
}

func TestRun_TunedParameterImportance(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	settings := baseSettings(r, 1)
	settings.TunedDynamicP = true
	run, err := dynamic.Run(context.Background(), settings, r)
	require.NoError(t, err)
	require.Greater(t, run.NumSamples(), 0)
}

func TestRun_RejectsStandardSettings(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	settings := baseSettings(r, 0)
	settings.DynamicGoal = nil
	_, err := dynamic.Run(context.Background(), settings, r)
	require.Error(t, err)
}

func TestRun_NeverReturnsAmbiguousLookup(t *testing.T) {
	for seed := int64(10); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		_, err := dynamic.Run(context.Background(), baseSettings(r, 0), r)
		if err != nil {
			require.False(t, errors.Is(err, dynamic.ErrAmbiguousLookup))
		}
	}
}

func TestRun_AbortsOnCancelledContext(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dynamic.Run(ctx, baseSettings(r, 0), r)
	require.True(t, errors.Is(err, context.Canceled))
}
