package outlet

import "errors"

var (
	ErrNotFound   = errors.New("outlet not found")
	ErrNameExists = errors.New("outlet with this name already exists")
)
