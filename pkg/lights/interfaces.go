package lights

import "github.com/df07/go-pathtracer/pkg/core"

// ShadowRayOffset moves shadow ray origins off the shaded surface
const ShadowRayOffset = 1e-4

// LightingInformation is the unoccluded contribution of a light at a
// shading point, together with the shadow ray that gates it
type LightingInformation struct {
	DiffuseColor   core.Vec3 // color · intensity · cosine factor
	Attenuation    float64   // distance falloff
	ShadowRay      core.Ray  // from the (offset) shading point toward the light
	OcclusionLimit float64   // max blocker distance; negative means unbounded
}

// Light interface for punctual lights evaluated once per shading point
type Light interface {
	// LightingInformation evaluates the light at a point with unit normal
	LightingInformation(point, normal core.Vec3) LightingInformation
}

// diffuse computes the clamped Lambert cosine term shared by all lights
func diffuse(toLight, normal, color core.Vec3, intensity float64) core.Vec3 {
	return color.Multiply(core.Saturate(toLight.Dot(normal)) * intensity)
}
