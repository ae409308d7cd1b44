package dynamic

// options holds the functional-option configuration for Run.
type options struct {
	reserveCapacity int
}

func defaultOptions() options {
	return options{reserveCapacity: 0}
}

// Option configures a Run call.
type Option func(*options)

// WithReserveCapacity pre-sizes the samples matrix ahead of the iteration
// loop with room for n rows beyond the exploratory run's samples. A positive
// n replaces the default reservation, which is sized from the n_samples_max
// estimate. Panics if n is negative.
func WithReserveCapacity(n int) Option {
	if n < 0 {
		panic("dynamic: WithReserveCapacity requires n >= 0")
	}
	return func(o *options) {
		o.reserveCapacity = n
	}
}
