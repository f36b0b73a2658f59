package constants

import "errors"

// ErrInvalidResourceID is returned when a Location header does not end in a
// numeric identifier.
var ErrInvalidResourceID = errors.New("invalid resource identifier")
