package samples_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejhigson/perfectns/samples"
)

func TestReconstructNLive_Constant(t *testing.T) {
	dNLive := make([]int, 10)
	got := samples.ReconstructNLive(5, dNLive)
	for _, v := range got {
		require.Equal(t, 5, v)
	}
}

func TestReconstructNLive_StandardTail(t *testing.T) {
	// 3 dead points with no thread events, then 3 final live points each
	// dying on its own row: nlive should read 3,3,3,3,2,1.
	dNLive := []int{0, 0, 0, -1, -1, -1}
	got := samples.ReconstructNLive(3, dNLive)
	require.Equal(t, []int{3, 3, 3, 3, 2, 1}, got)
}

func TestReconstructNLive_Birth(t *testing.T) {
	// A birth recorded on row 1 takes effect starting row 2.
	dNLive := []int{0, 1, 0, 0}
	got := samples.ReconstructNLive(2, dNLive)
	require.Equal(t, []int{2, 2, 3, 3}, got)
}

func TestReconstructLogW_ConstantNLiveMatchesStandardFormula(t *testing.T) {
	nlive := []int{10, 10, 10}
	logl := []float64{-3, -2, -1}
	got := samples.ReconstructLogW(logl, nlive)

	logx := 0.0
	invN := 1.0 / 10.0
	logtrapz := math.Log(0.5 * (math.Exp(invN) - math.Exp(-invN)))
	for i := range logl {
		logx -= invN
		want := logl[i] + logtrapz + logx
		require.InDelta(t, want, got[i], 1e-12)
	}
}
