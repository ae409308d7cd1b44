package problem

import "errors"

// ErrInvalidSettings is the sentinel returned by Settings.Validate for any
// out-of-range or internally inconsistent field. Callers use errors.Is to
// branch on this; context is layered on with fmt.Errorf("%w: ...").
var ErrInvalidSettings = errors.New("problem: invalid settings")
