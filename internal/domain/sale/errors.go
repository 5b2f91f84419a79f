package sale

import "errors"

var (
	ErrNotFound         = errors.New("sale not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrPlatformNotFound = errors.New("platform not found")
	ErrInvalidRange     = errors.New("sale end date must not be before start date")
	ErrNoPlatforms      = errors.New("no active platforms to schedule on")
)
