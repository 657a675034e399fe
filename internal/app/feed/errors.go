package feed

import "errors"

// ErrDegenerateRange marks a record whose adjusted start falls after its end,
// spanning zero valid days.
var ErrDegenerateRange = errors.New("feed: degenerate date range")
