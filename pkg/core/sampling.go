package core

import (
	"math"
	"math/rand"
	"time"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a fixed seed. A zero seed is
// replaced with the current wall-clock time.
func NewSeededSampler(seed int64) *RandomSampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1), X drawn first
func (r *RandomSampler) Get2D() Vec2 {
	x := r.random.Float64()
	y := r.random.Float64()
	return NewVec2(x, y)
}

// Saturate clamps a value to [0, 1]
func Saturate(val float64) float64 {
	if val > 1 {
		return 1
	}
	if val < 0 {
		return 0
	}
	return val
}

// OrthonormalBasis builds a tangent and bitangent around a unit normal.
// Branchless construction from Duff et al., stable at both poles.
func OrthonormalBasis(normal Vec3) (tangent, bitangent Vec3) {
	sign := math.Copysign(1, normal.Z)
	a := -1.0 / (sign + normal.Z)
	b := normal.X * normal.Y * a
	tangent = NewVec3(1+sign*normal.X*normal.X*a, sign*b, -sign*normal.X)
	bitangent = NewVec3(b, sign+normal.Y*normal.Y*a, -normal.Y)
	return tangent, bitangent
}

// LocalToWorld maps a direction expressed in a y-up shading frame
// (normal along Y) into world space.
func LocalToWorld(local, normal, tangent, bitangent Vec3) Vec3 {
	return Vec3{
		X: local.X*tangent.X + local.Y*normal.X + local.Z*bitangent.X,
		Y: local.X*tangent.Y + local.Y*normal.Y + local.Z*bitangent.Y,
		Z: local.X*tangent.Z + local.Y*normal.Z + local.Z*bitangent.Z,
	}
}

// WorldToLocal expresses a world-space direction in the y-up shading frame
// built by OrthonormalBasis. It is the inverse of LocalToWorld.
func WorldToLocal(world, normal, tangent, bitangent Vec3) Vec3 {
	return Vec3{
		X: world.Dot(tangent),
		Y: world.Dot(normal),
		Z: world.Dot(bitangent),
	}
}

// SampleUniformSphere maps two uniform numbers to a direction on the unit
// sphere, y-up: cos(theta) is uniform on [-1, 1], phi uniform on [0, 2π).
func SampleUniformSphere(u1, u2 float64) Vec3 {
	cosTheta := 2*u1 - 1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2
	return NewVec3(sinTheta*math.Cos(phi), cosTheta, sinTheta*math.Sin(phi))
}
