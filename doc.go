// Package perfectns implements nested sampling for spherically symmetric
// likelihood and prior families with closed-form inverse-CDF maps: a
// fixed-live-point standard driver, an importance-driven dynamic driver,
// and the estimators used to summarize a completed run.
//
// Subpackages:
//
//	problem/     — the collaborator contract (likelihood, prior, shell sampler)
//	kernel/      — shared numeric primitives (log-sum-exp, shell sampling)
//	thread/      — single-live-point trajectory generation
//	samples/     — the run record and nlive/logw reconstruction
//	standard/    — fixed-nlive nested-sampling driver
//	importance/  — per-sample importance functions for the dynamic driver
//	dynamic/     — importance-driven nested-sampling driver
//	estimators/  — evidence, parameter, and credible-interval estimators
//	rng/         — per-run RNG construction
package perfectns
