package output

import "errors"

var (
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
	ErrInvalidScale      = errors.New("output: scale must be at least 1")
)
