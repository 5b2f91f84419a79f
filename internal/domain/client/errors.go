package client

import "errors"

var (
	ErrNotFound    = errors.New("client not found")
	ErrEmailExists = errors.New("client with this contact email already exists")
)
