// Package gaussfixture implements a minimal concrete Gaussian-likelihood ×
// Gaussian-prior problem.Problem, used only from _test.go files across this
// module to exercise the drivers and estimators against realistic run
// scenarios.
//
// The specific likelihood/prior objects are explicitly out of scope for
// this module's product surface; this fixture plays the same role a
// fake/stub plays in any test suite and is never imported from non-test
// code.
package gaussfixture
