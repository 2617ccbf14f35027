package lights

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PointLight emits from a single position with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a white point light with unit intensity
func NewPointLight(position core.Vec3) *PointLight {
	return NewColoredPointLight(position, core.NewVec3(1, 1, 1), 1)
}

// NewColoredPointLight creates a point light with explicit color and intensity
func NewColoredPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{Position: position, Color: color, Intensity: intensity}
}

// LightingInformation returns the contribution at point. The falloff is
// 1/(d²+1), which stays finite as the point approaches the light.
func (p *PointLight) LightingInformation(point, normal core.Vec3) LightingInformation {
	toLight := p.Position.Subtract(point)
	distanceSq := toLight.LengthSquared()
	distance := math.Sqrt(distanceSq)
	toLight = toLight.Normalize()

	return LightingInformation{
		DiffuseColor:   diffuse(toLight, normal, p.Color, p.Intensity),
		Attenuation:    1 / (distanceSq + 1),
		ShadowRay:      core.NewRay(point.Add(toLight.Multiply(ShadowRayOffset)), toLight),
		OcclusionLimit: distance,
	}
}
