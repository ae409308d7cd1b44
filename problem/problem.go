package problem

// Problem is the collaborator contract every driver consumes. All radial
// and prior-volume maps are monotonic and exact (closed-form), which is
// what lets the core treat a "likelihood call" as a direct function
// evaluation rather than an MCMC step.
type Problem interface {
	// RGivenLogX maps a log prior-volume coordinate to a radius. Must be
	// monotonic in logx.
	RGivenLogX(logx float64) (float64, error)

	// LogLGivenR returns the log-likelihood at radius r.
	LogLGivenR(r float64) (float64, error)

	// LogLGivenLogX composes RGivenLogX and LogLGivenR; collaborators may
	// implement it directly for efficiency, but it must agree with the
	// composition to within numerical tolerance.
	LogLGivenLogX(logx float64) (float64, error)

	// SampleNSphereShell returns a uniformly sampled point on the n-sphere
	// of radius r, truncated to the first dimsToSample coordinates. Any
	// Problem automatically satisfies kernel.ShellSampler through Go's
	// structural typing, so kernel.SampleShell accepts any Problem without
	// problem and kernel importing each other.
	SampleNSphereShell(r float64, nDim, dimsToSample int) ([]float64, error)
}

// EvidenceAnalytic is an optional capability: a collaborator that knows its
// own closed-form log-evidence implements it. The core checks for this via
// a type assertion rather than requiring every Problem to carry a
// might-be-unavailable method: a capability interface, not a fat interface
// with sentinel non-values.
type EvidenceAnalytic interface {
	LogZAnalytic() (float64, error)
}

// TerminateAnalytic is an optional capability: a collaborator that can
// name a log prior volume beyond which the tail contribution to evidence
// is negligible, used by the analytic reference integrator.
type TerminateAnalytic interface {
	AnalyticLogXTerminate() (float64, error)
}
