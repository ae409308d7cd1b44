package gaussfixture

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// GaussGauss is an isotropic Gaussian likelihood (scale LikelihoodSigma)
// against an isotropic Gaussian prior (scale PriorSigma), both centred on
// the origin in NDim dimensions. This is the standard conjugate test case
// used throughout this module's own test suite, since it admits closed-form
// evidence and posterior moments to check estimators against.
type GaussGauss struct {
	NDim            int
	LikelihoodSigma float64
	PriorSigma      float64
	RNG             *rand.Rand // owns its own source; out of the core's RNG contract.
}

// RGivenLogX inverts the prior's enclosed-volume map. Under an isotropic
// Gaussian prior, r^2/PriorSigma^2 follows a chi-squared distribution with
// NDim degrees of freedom, so X(r) is exactly that distribution's CDF and
// r_given_logx is its quantile function.
func (g GaussGauss) RGivenLogX(logx float64) (float64, error) {
	x := math.Exp(logx)
	chi2 := distuv.ChiSquared{K: float64(g.NDim)}
	q := chi2.Quantile(x)
	return g.PriorSigma * math.Sqrt(q), nil
}

// LogLGivenR returns the isotropic Gaussian log-likelihood at radius r.
func (g GaussGauss) LogLGivenR(r float64) (float64, error) {
	n := float64(g.NDim)
	sigma2 := g.LikelihoodSigma * g.LikelihoodSigma
	return -0.5*n*math.Log(2*math.Pi*sigma2) - (r*r)/(2*sigma2), nil
}

// LogLGivenLogX composes RGivenLogX and LogLGivenR.
func (g GaussGauss) LogLGivenLogX(logx float64) (float64, error) {
	r, err := g.RGivenLogX(logx)
	if err != nil {
		return 0, err
	}
	return g.LogLGivenR(r)
}

// SampleNSphereShell draws nDim iid standard normals, normalizes to the
// unit sphere, scales by r, and truncates to the first dimsToSample
// coordinates — the standard "normalize a Gaussian vector" construction for
// a uniform point on an n-sphere.
func (g GaussGauss) SampleNSphereShell(r float64, nDim, dimsToSample int) ([]float64, error) {
	v := make([]float64, nDim)
	norm := 0.0
	for i := range v {
		v[i] = g.RNG.NormFloat64()
		norm += v[i] * v[i]
	}
	norm = math.Sqrt(norm)
	out := make([]float64, dimsToSample)
	for i := 0; i < dimsToSample; i++ {
		out[i] = v[i] / norm * r
	}
	return out, nil
}

// LogZAnalytic returns the closed-form log-evidence: the convolution of
// two co-centred isotropic Gaussians is again Gaussian, evaluated at zero.
func (g GaussGauss) LogZAnalytic() (float64, error) {
	n := float64(g.NDim)
	combined := g.LikelihoodSigma*g.LikelihoodSigma + g.PriorSigma*g.PriorSigma
	return -0.5 * n * math.Log(2*math.Pi*combined), nil
}

// AnalyticLogXTerminate names a prior volume deep enough that the
// Gaussian tail's evidence contribution is negligible for any sigma pair
// used in this module's tests.
func (g GaussGauss) AnalyticLogXTerminate() (float64, error) {
	return -100, nil
}

// CombinedPosteriorSigma is the standard conjugate-Gaussian posterior
// scale, used by estimators.ParamCred's analytic branch.
func (g GaussGauss) CombinedPosteriorSigma() float64 {
	return math.Pow(math.Pow(g.LikelihoodSigma, -2)+math.Pow(g.PriorSigma, -2), -0.5)
}
