package estimators

import "errors"

var (
	// ErrNotApplicable is returned by an Analytical implementation when the
	// wired problem collaborator does not support the capability the
	// analytic value needs (e.g. LogZAnalytic). Estimators with no
	// closed-form reference at all do not implement Analytical.
	ErrNotApplicable = errors.New("estimators: no analytic reference available")

	// ErrNumericalFailure is returned by the adaptive analytic integrator
	// when successive refinements fail to converge within the node-count
	// ceiling.
	ErrNumericalFailure = errors.New("estimators: analytic integral did not converge")
)
