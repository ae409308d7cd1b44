// Package estimators computes summary quantities (evidence, sample
// counts, parameter means, credible intervals) from a completed nested-
// sampling run, each paired with an optional closed-form reference value
// when the wired problem collaborator supports one.
package estimators
