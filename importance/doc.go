// Package importance computes per-sample importance weights used by the
// dynamic driver to decide where to add new threads: an evidence-focused
// variant, a parameter-focused variant (untuned or tuned to the first
// coordinate), and a blend of the two.
package importance
