package renderer

import "errors"

var (
	ErrInterrupted    = errors.New("renderer: interrupted while rendering")
	ErrInvalidOptions = errors.New("renderer: invalid options")
)
