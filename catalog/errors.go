package catalog

import "errors"

// ErrParams indicates a negative rank or ground-set size.
var ErrParams = errors.New("catalog: invalid parameters")
