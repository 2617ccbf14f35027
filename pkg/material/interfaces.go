package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// EmissiveThreshold is the squared emission energy above which a material
// counts as a light source
const EmissiveThreshold = 0.1

// BRDF models reflection between two directions expressed in the shading
// frame, where the surface normal is the +Y axis.
type BRDF interface {
	// F evaluates the reflectance for a fixed pair of directions
	F(wo, wi core.Vec3) float64

	// SampleF importance-samples an incident direction for wo.
	// Returns the local-space direction, its PDF and the BRDF value.
	SampleF(wo core.Vec3, sampler core.Sampler) (wi core.Vec3, pdf float64, value float64)
}

// Material maps a surface parameterization to reflectance and emission.
// A material may be shared by any number of shapes.
type Material interface {
	Color(u, v float64) core.Vec3
	Emittance(u, v float64) core.Vec3
	IsEmissive() bool
	BRDF() BRDF
}
