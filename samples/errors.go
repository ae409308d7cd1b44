package samples

import "errors"

// ErrShapeMismatch is returned when parallel arrays fed into Run or Matrix
// construction disagree in length, or Theta's row count disagrees with the
// other arrays. This is a programmer-error guard, not a user-input
// validation: callers assemble these structures internally.
var ErrShapeMismatch = errors.New("samples: shape mismatch between parallel arrays")
