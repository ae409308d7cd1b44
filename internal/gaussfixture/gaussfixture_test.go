package gaussfixture_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejhigson/perfectns/internal/gaussfixture"
)

func TestRGivenLogX_Monotonic(t *testing.T) {
	g := gaussfixture.GaussGauss{NDim: 3, LikelihoodSigma: 1, PriorSigma: 10}
	rPrev, err := g.RGivenLogX(-5)
	require.NoError(t, err)
	rNext, err := g.RGivenLogX(-1)
	require.NoError(t, err)
	require.Less(t, rPrev, rNext)
}

func TestLogLGivenLogX_ComposesMaps(t *testing.T) {
	g := gaussfixture.GaussGauss{NDim: 2, LikelihoodSigma: 1, PriorSigma: 5}
	logx := -2.0
	r, err := g.RGivenLogX(logx)
	require.NoError(t, err)
	want, err := g.LogLGivenR(r)
	require.NoError(t, err)
	got, err := g.LogLGivenLogX(logx)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-9)
}

func TestSampleNSphereShell_NormEqualsR(t *testing.T) {
	g := gaussfixture.GaussGauss{NDim: 5, RNG: rand.New(rand.NewSource(1))}
	theta, err := g.SampleNSphereShell(3.0, 5, 5)
	require.NoError(t, err)
	norm := 0.0
	for _, v := range theta {
		norm += v * v
	}
	require.InDelta(t, 3.0, math.Sqrt(norm), 1e-9)
}

func TestLogZAnalytic_SigmaOneCase(t *testing.T) {
	g := gaussfixture.GaussGauss{NDim: 1, LikelihoodSigma: 1, PriorSigma: 1}
	z, err := g.LogZAnalytic()
	require.NoError(t, err)
	require.InDelta(t, -0.5*math.Log(4*math.Pi), z, 1e-9)
}
