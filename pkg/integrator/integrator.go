package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Path construction constants
const (
	RayOffset           = 1e-4  // origin offset for shadow and bounce rays
	AreaOcclusionScale  = 0.999 // shadow rays toward area lights stop just short of the sample
	MinScatter          = 1e-4  // BRDF values below this end the path
	RouletteProbability = 0.25  // termination probability from the second bounce on
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. areaLights is the
	// scene's list of finite emissive shapes, computed once per frame.
	RayColor(ray core.Ray, scene *scene.Scene, areaLights []geometry.Shape, sampler core.Sampler) core.Vec3

	// Stats returns the path counters gathered since the last ResetStats
	Stats() Stats
	ResetStats()
}

var _ Integrator = (*PathTracingIntegrator)(nil)

// Config controls path construction
type Config struct {
	LightSamples int // samples per area light per vertex, rounded down to an s1 x s2 grid
	MaxDepth     int // hard bounce cap; 0 leaves termination to Russian roulette
}

// LightGrid splits n light samples into an s1 x s2 stratification grid with
// s1 = floor(sqrt(n)) and s2 = n / s1. Non-positive n disables area lights.
func LightGrid(n int) (s1, s2 int) {
	if n <= 0 {
		return 0, 0
	}
	s1 = int(math.Sqrt(float64(n)))
	s2 = n / s1
	return s1, s2
}

// RussianRoulette terminates a path with probability q using the uniform
// number u. Surviving throughput is scaled by 1/(1-q) so the estimate stays
// unbiased.
func RussianRoulette(beta core.Vec3, u, q float64) (core.Vec3, bool) {
	if u < q {
		return core.Vec3{}, false
	}
	return beta.Divide(1 - q), true
}
