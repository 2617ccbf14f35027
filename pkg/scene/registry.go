package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/log"
)

// Options carries the inputs a built-in scene may need
type Options struct {
	TextureDir string
	Logger     log.Logger
}

// Definition describes a built-in scene
type Definition struct {
	Name        string
	Description string
	Build       func(opts Options) *Scene
}

var builtins = []Definition{
	{
		Name:        "room",
		Description: "Textured room with two spheres and a rectangular ceiling lamp",
		Build:       func(opts Options) *Scene { return NewRoomScene(opts.TextureDir, opts.Logger) },
	},
	{
		Name:        "sphere",
		Description: "Single diffuse sphere lit by a point light",
		Build:       func(Options) *Scene { return NewSphereScene() },
	},
	{
		Name:        "ellipse",
		Description: "Sphere over a ground plane under a directional light and an elliptical lamp",
		Build:       func(Options) *Scene { return NewEllipseScene() },
	},
}

// Builtin looks up a built-in scene by name
func Builtin(name string) (Definition, error) {
	for _, def := range builtins {
		if def.Name == name {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Definitions returns every built-in scene in registration order
func Definitions() []Definition {
	defs := make([]Definition, len(builtins))
	copy(defs, builtins)
	return defs
}

// Names returns the built-in scene names in registration order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, def := range builtins {
		names = append(names, def.Name)
	}
	return names
}
