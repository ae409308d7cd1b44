// Package dynamic implements the importance-driven nested-sampling driver:
// an initial exploratory run at a small live-point count, followed by
// repeated insertion of new single-live-point threads in the regions the
// chosen importance function flags as undersampled.
package dynamic
