package coverage

import "errors"

var (
	ErrNotFound       = errors.New("coverage item not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrOutletNotFound = errors.New("outlet not found")
)
