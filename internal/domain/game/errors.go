package game

import "errors"

var (
	ErrNotFound   = errors.New("game not found")
	ErrSlugExists = errors.New("game with this slug already exists")
)
