package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3

	radius     float64
	inversePDF float64
	material   material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center: center, material: mat}
	s.SetRadius(radius)
	return s
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// SetRadius updates the radius and the cached surface area
func (s *Sphere) SetRadius(radius float64) {
	s.radius = radius
	s.inversePDF = 4 * math.Pi * radius * radius
}

// Intersect solves |o + t·d - c| = r and returns the smaller root. The root
// may be negative when the origin is inside or past the sphere; callers
// reject non-positive distances.
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	return (-halfB - sqrtD) / a
}

// NormalAt returns the outward normal, unit length by construction
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.radius)
}

// UVAt maps the point to longitude/latitude coordinates
func (s *Sphere) UVAt(point core.Vec3) (float64, float64) {
	rp := point.Subtract(s.Center)
	theta := math.Acos(max(-1, min(1, rp.Y/s.radius)))
	phi := math.Atan2(rp.Z, rp.X)
	return phi*0.5/math.Pi + 0.5, theta / math.Pi
}

func (s *Sphere) IsFinite() bool              { return true }
func (s *Sphere) InversePDF() float64         { return s.inversePDF }
func (s *Sphere) Material() material.Material { return s.material }

// Sample returns a uniformly distributed point on the sphere surface
func (s *Sphere) Sample(sampler core.Sampler) core.Vec3 {
	u1 := sampler.Get1D()
	u2 := sampler.Get1D()
	return s.pointAt(u1, u2)
}

// SampleGrid draws stratified points on the surface
func (s *Sphere) SampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3) {
	sampleGrid(sampler, s1, s2, samples, s.pointAt)
}

func (s *Sphere) pointAt(u1, u2 float64) core.Vec3 {
	return s.Center.Add(core.SampleUniformSphere(u1, u2).Multiply(s.radius))
}
