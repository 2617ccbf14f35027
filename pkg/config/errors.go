package config

import "errors"

var (
	ErrInvalidResolution = errors.New("config: width and height must be positive")
	ErrInvalidSamples    = errors.New("config: invalid sample counts")
	ErrInvalidOutput     = errors.New("config: unsupported output file type")
)
