package thread

import "errors"

var (
	// ErrInvalidInterval is returned when logx_start <= logx_end.
	ErrInvalidInterval = errors.New("thread: logx_start must be strictly greater than logx_end")

	// ErrEmptyThread is returned when a trajectory retains zero points,
	// e.g. the first draw already crosses logx_end and keepFinalPoint is
	// false.
	ErrEmptyThread = errors.New("thread: generated trajectory retained zero points")
)
