package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/ejhigson/perfectns/problem"
)

// FTilde is the capability an estimator implements to provide its
// analytic integrand's iso-likelihood-contour average, f̃(logx), used by
// analyticIntegral.
type FTilde interface {
	FTilde(logx float64, settings problem.Settings) (float64, error)
}

const (
	integratorStartNodes = 16
	integratorMaxNodes   = 4096
	integratorTolerance  = 1e-6
)

// analyticIntegral computes
//
//	∫ e^{logl(logx) + logx} · f̃(logx) dlogx / Z
//
// over [logx_terminate, 0], via fixed Gauss-Legendre quadrature
// (gonum/integrate/quad), doubling the node count until successive
// estimates agree within a relative tolerance. Returns ErrNumericalFailure
// if the node count reaches integratorMaxNodes without converging, and
// ErrNotApplicable if the collaborator lacks the analytic capabilities the
// integral needs.
func analyticIntegral(f FTilde, settings problem.Settings) (float64, error) {
	evidenceCap, err := settings.RequireAnalyticEvidence()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotApplicable, err)
	}
	terminateCap, err := settings.RequireAnalyticTerminate()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotApplicable, err)
	}

	logZ, err := evidenceCap.LogZAnalytic()
	if err != nil {
		return 0, err
	}
	logxTerminate, err := terminateCap.AnalyticLogXTerminate()
	if err != nil {
		return 0, err
	}

	var integrandErr error
	integrand := func(logx float64) float64 {
		logl, err := settings.Problem.LogLGivenLogX(logx)
		if err != nil {
			integrandErr = err
			return 0
		}
		ft, err := f.FTilde(logx, settings)
		if err != nil {
			integrandErr = err
			return 0
		}
		return math.Exp(logl+logx-logZ) * ft
	}

	n := integratorStartNodes
	prev := quad.Fixed(integrand, logxTerminate, 0, n, nil, 0)
	if integrandErr != nil {
		return 0, integrandErr
	}

	for n < integratorMaxNodes {
		n *= 2
		cur := quad.Fixed(integrand, logxTerminate, 0, n, nil, 0)
		if integrandErr != nil {
			return 0, integrandErr
		}
		if math.Abs(cur-prev) <= integratorTolerance*math.Abs(cur) {
			return cur, nil
		}
		prev = cur
	}
	return 0, ErrNumericalFailure
}
