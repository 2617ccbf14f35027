package loaders

import "errors"

var (
	// ErrNotPPM is returned when the input lacks the binary P6 magic
	ErrNotPPM = errors.New("loaders: not a binary PPM (P6) image")

	// ErrMalformedPPM is returned for truncated or out-of-range PPM headers
	ErrMalformedPPM = errors.New("loaders: malformed PPM header")

	// ErrUnsupportedOutput is returned by SaveImage for unknown file extensions
	ErrUnsupportedOutput = errors.New("loaders: unsupported output format")
)
