package standard

// options holds the functional-option configuration for Run.
type options struct {
	reserveCapacity int
}

func defaultOptions() options {
	return options{reserveCapacity: 0}
}

// Option configures a Run call.
type Option func(*options)

// WithReserveCapacity pre-sizes the dead-point buffers to n rows, avoiding
// amortized reallocation when the caller has a reasonable estimate of the
// eventual sample count. Panics if n is negative.
func WithReserveCapacity(n int) Option {
	if n < 0 {
		panic("standard: WithReserveCapacity requires n >= 0")
	}
	return func(o *options) {
		o.reserveCapacity = n
	}
}
