package platform

import "errors"

var (
	ErrNotFound      = errors.New("platform not found")
	ErrSlugExists    = errors.New("platform with this slug already exists")
	ErrEventNotFound = errors.New("platform event not found")
	ErrInvalidRange  = errors.New("event end date precedes start date")
)
