// Package samples holds the in-memory representation of a nested-sampling
// run: the immutable Run record the drivers return, the mutable Matrix the
// dynamic driver builds incrementally, and the pure reconstruction
// functions that turn thread birth/death bookkeeping into nlive_array and
// logw.
//
// The layout is structure-of-arrays throughout (parallel slices plus a
// *mat.Dense for theta), never a slice of per-sample structs: this keeps
// sorting and prefix-sum reconstruction contiguous and cheap.
package samples
