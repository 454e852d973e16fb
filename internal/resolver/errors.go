package resolver

import "errors"

// ErrNoPortResult is returned when the port finder closes its channel
// without delivering a result.
var ErrNoPortResult = errors.New("port finder returned no result")
