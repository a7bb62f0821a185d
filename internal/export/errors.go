package export

import "errors"

// ErrEntryLimit is returned when a single day accumulates more than the
// allowed number of entries before reaching its target. It aborts the whole
// run rather than skipping the day.
var ErrEntryLimit = errors.New("daily entry limit exceeded")
