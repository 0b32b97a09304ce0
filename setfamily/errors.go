package setfamily

import "errors"

var (
	// ErrGroundSet indicates a subset element that is not part of the
	// declared ground set.
	ErrGroundSet = errors.New("setfamily: element not in ground set")

	// ErrNilFamily indicates a nil *Family where a constructed one is required.
	ErrNilFamily = errors.New("setfamily: nil family")
)
