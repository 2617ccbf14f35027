package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidMaterial has constant color and emission over the whole surface
type SolidMaterial struct {
	Albedo   core.Vec3
	Emission core.Vec3

	brdf *LambertBRDF
}

// NewSolidMaterial creates a non-emissive diffuse material
func NewSolidMaterial(color core.Vec3, diffuseFactor float64) *SolidMaterial {
	return NewEmissiveSolidMaterial(color, diffuseFactor, core.Vec3{})
}

// NewEmissiveSolidMaterial creates a diffuse material that also emits light
func NewEmissiveSolidMaterial(color core.Vec3, diffuseFactor float64, emission core.Vec3) *SolidMaterial {
	return &SolidMaterial{
		Albedo:   color,
		Emission: emission,
		brdf:     NewLambertBRDF(diffuseFactor),
	}
}

// NewDefaultSolidMaterial creates a white material with the default diffuse factor
func NewDefaultSolidMaterial() *SolidMaterial {
	return NewSolidMaterial(core.NewVec3(1, 1, 1), DefaultDiffuseFactor)
}

func (s *SolidMaterial) Color(u, v float64) core.Vec3     { return s.Albedo }
func (s *SolidMaterial) Emittance(u, v float64) core.Vec3 { return s.Emission }
func (s *SolidMaterial) BRDF() BRDF                       { return s.brdf }

// IsEmissive reports whether the emitted energy exceeds EmissiveThreshold
func (s *SolidMaterial) IsEmissive() bool {
	return s.Emission.LengthSquared() > EmissiveThreshold
}
