package problem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ejhigson/perfectns/problem"
)

type fakeProblem struct{}

func (fakeProblem) RGivenLogX(logx float64) (float64, error)    { return -logx, nil }
func (fakeProblem) LogLGivenR(r float64) (float64, error)        { return -r, nil }
func (fakeProblem) LogLGivenLogX(logx float64) (float64, error) { return logx, nil }
func (fakeProblem) SampleNSphereShell(r float64, nDim, dimsToSample int) ([]float64, error) {
	return make([]float64, dimsToSample), nil
}

func baseSettings() problem.Settings {
	return problem.Settings{
		NDim:                3,
		DimsToSample:        3,
		NLiveConst:          50,
		TerminationFraction: 1e-3,
		Problem:             fakeProblem{},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, baseSettings().Validate())
}

func TestValidate_NilProblem(t *testing.T) {
	s := baseSettings()
	s.Problem = nil
	err := s.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, problem.ErrInvalidSettings))
}

func TestValidate_BadDims(t *testing.T) {
	s := baseSettings()
	s.DimsToSample = 4
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)

	s2 := baseSettings()
	s2.DimsToSample = 0
	require.ErrorIs(t, s2.Validate(), problem.ErrInvalidSettings)
}

func TestValidate_TerminationFractionRange(t *testing.T) {
	s := baseSettings()
	s.TerminationFraction = 0
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)

	s2 := baseSettings()
	s2.TerminationFraction = 1
	require.ErrorIs(t, s2.Validate(), problem.ErrInvalidSettings)
}

func TestValidate_DynamicGoalRange(t *testing.T) {
	s := baseSettings()
	bad := 1.5
	s.DynamicGoal = &bad
	s.NInit = 20
	s.NBatch = 1
	s.DynamicFraction = 0.5
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)
}

func TestValidate_DynamicRequiresNInitAndNBatch(t *testing.T) {
	s := baseSettings()
	goal := 0.5
	s.DynamicGoal = &goal
	s.DynamicFraction = 0.5
	// NInit and NBatch left zero.
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)
}

func TestValidate_DynamicFractionRange(t *testing.T) {
	s := baseSettings()
	goal := 0.0
	s.DynamicGoal = &goal
	s.NInit = 20
	s.NBatch = 1
	s.DynamicFraction = 1.0
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)
}

func TestValidate_LogXTerminateMustBeNegative(t *testing.T) {
	s := baseSettings()
	zero := 0.0
	s.LogXTerminate = &zero
	require.ErrorIs(t, s.Validate(), problem.ErrInvalidSettings)
}

func TestRequireAnalyticEvidence_MissingCapability(t *testing.T) {
	s := baseSettings()
	_, err := s.RequireAnalyticEvidence()
	require.ErrorIs(t, err, problem.ErrInvalidSettings)
}

type analyticProblem struct{ fakeProblem }

func (analyticProblem) LogZAnalytic() (float64, error) { return -1.23, nil }

func TestRequireAnalyticEvidence_Present(t *testing.T) {
	s := baseSettings()
	s.Problem = analyticProblem{}
	cap, err := s.RequireAnalyticEvidence()
	require.NoError(t, err)
	v, err := cap.LogZAnalytic()
	require.NoError(t, err)
	require.Equal(t, -1.23, v)
}
