package lights

import "github.com/df07/go-pathtracer/pkg/core"

// DirectionalLight illuminates every point from the same direction
type DirectionalLight struct {
	Direction core.Vec3 // direction the light travels
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a white directional light with unit intensity
func NewDirectionalLight(direction core.Vec3) *DirectionalLight {
	return NewColoredDirectionalLight(direction, core.NewVec3(1, 1, 1), 1)
}

// NewColoredDirectionalLight creates a directional light with explicit color and intensity
func NewColoredDirectionalLight(direction, color core.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

func (d *DirectionalLight) LightingInformation(point, normal core.Vec3) LightingInformation {
	toLight := d.Direction.Negate()

	return LightingInformation{
		DiffuseColor:   diffuse(toLight, normal, d.Color, d.Intensity),
		Attenuation:    1,
		ShadowRay:      core.NewRay(point.Add(toLight.Multiply(ShadowRayOffset)), toLight),
		OcclusionLimit: -1,
	}
}
