// Package thread generates a single-live-point trajectory (a "thread") over
// a given logx interval: the trajectory every standard-driver live point
// traces out between birth and death, and what the dynamic driver inserts
// in batches where importance is highest.
package thread
