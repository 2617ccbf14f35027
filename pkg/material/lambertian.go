package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultDiffuseFactor is the diffuse scale used when none is given
const DefaultDiffuseFactor = 0.2

// LambertBRDF is a perfectly diffuse BRDF with cosine-weighted sampling
type LambertBRDF struct {
	DiffuseFactor float64 // Diffuse scale in [0, 1]
}

// NewLambertBRDF creates a Lambertian BRDF with the given diffuse factor
func NewLambertBRDF(diffuseFactor float64) *LambertBRDF {
	return &LambertBRDF{DiffuseFactor: diffuseFactor}
}

// F returns the constant Lambertian reflectance k/π
func (l *LambertBRDF) F(wo, wi core.Vec3) float64 {
	return l.DiffuseFactor / math.Pi
}

// SampleF draws a cosine-weighted direction in the upper (+Y) hemisphere.
// The PDF cos(θ)/π cancels the cosine term of the rendering equation.
func (l *LambertBRDF) SampleF(wo core.Vec3, sampler core.Sampler) (core.Vec3, float64, float64) {
	sinTheta := math.Sqrt(sampler.Get1D())
	cosTheta := math.Sqrt(1 - sinTheta*sinTheta)
	phi := 2 * math.Pi * sampler.Get1D()

	wi := core.NewVec3(sinTheta*math.Cos(phi), cosTheta, sinTheta*math.Sin(phi))
	pdf := cosTheta / math.Pi
	return wi, pdf, l.DiffuseFactor / math.Pi
}
