// Package standard implements the fixed-live-point nested-sampling driver:
// a replacement loop over a constant-size live-point set, a geometric
// shrinkage model of prior volume, and a live-evidence termination rule.
package standard
