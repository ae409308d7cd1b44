// Package problem defines the contract between the nested-sampling core
// and the likelihood/prior collaborator: the spherically symmetric
// r↔logx↔logl maps, shell sampling, and the optional analytic reference
// values a collaborator may be able to supply.
//
// The core never constructs a Problem itself — concrete likelihood and
// prior families (Gaussian, exponential-power, Cauchy, ...) are out of
// scope here and live with the caller.
package problem
