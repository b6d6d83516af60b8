// Package gallery: sentinel errors.

package gallery

import "errors"

// ErrBadDimension is returned when a requested grid dimension is not positive.
var ErrBadDimension = errors.New("gallery: dimensions must be > 0")
