package scene

import "errors"

// ErrUnknownScene is returned when a built-in scene name is not registered
var ErrUnknownScene = errors.New("scene: unknown built-in scene")
