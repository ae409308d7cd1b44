package dynamic

import "errors"

// ErrAmbiguousLookup would be returned by a by-value logl lookup that
// matches more than one row of the samples matrix when locating an
// insertion bracket's boundary. This implementation never performs that
// lookup: the insertion bracket's boundary is already a row index into the
// pre-insertion matrix (computed once when the importance threshold is
// crossed), and that index is reused directly for the birth-bookkeeping
// update instead of being re-derived by searching for a matching logl
// value. The sentinel is kept for API parity with ports that do perform
// the by-value search, and is asserted unreachable by this package's own
// tests.
var ErrAmbiguousLookup = errors.New("dynamic: ambiguous logl lookup")
