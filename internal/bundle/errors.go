package bundle

import "errors"

// ErrUnsupportedFormat is returned by [LoadBase] for file extensions other
// than .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported base config format")
