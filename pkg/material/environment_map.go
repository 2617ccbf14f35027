package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// EnvironmentMap returns background radiance for rays leaving the scene.
// The texture is addressed with a latitude/longitude mapping.
type EnvironmentMap struct {
	texture *Texture
}

// NewEnvironmentMap creates an environment map from a lat-long texture
func NewEnvironmentMap(texture *Texture) *EnvironmentMap {
	return &EnvironmentMap{texture: texture}
}

// NewConstantEnvironmentMap creates an environment map of uniform radiance
func NewConstantEnvironmentMap(color core.Vec3) *EnvironmentMap {
	return NewEnvironmentMap(NewSolidTexture(color))
}

// NewBlackEnvironmentMap creates an environment map that contributes nothing
func NewBlackEnvironmentMap() *EnvironmentMap {
	return NewConstantEnvironmentMap(core.Vec3{})
}

// IsValid reports whether the underlying texture loaded
func (e *EnvironmentMap) IsValid() bool {
	return e.texture.IsValid()
}

// Sample returns the radiance arriving from a unit direction
func (e *EnvironmentMap) Sample(direction core.Vec3) core.Vec3 {
	theta := math.Acos(max(-1, min(1, direction.Y)))
	phi := math.Atan2(direction.X, direction.Z)
	u := phi*0.5/math.Pi + 0.5
	v := theta / math.Pi
	return e.texture.Sample(u, v)
}
