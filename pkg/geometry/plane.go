package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (should be normalized)

	material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		material: mat,
	}
}

// Intersect returns the signed distance to the plane, or NoHit for rays
// parallel to it
func (p *Plane) Intersect(ray core.Ray) float64 {
	return planeDistance(ray, p.Point, p.Normal)
}

func (p *Plane) NormalAt(point core.Vec3) core.Vec3      { return p.Normal }
func (p *Plane) UVAt(point core.Vec3) (float64, float64) { return 0, 0 }
func (p *Plane) Material() material.Material             { return p.material }

// IsFinite is false: planes cannot be sampled as area lights
func (p *Plane) IsFinite() bool { return false }

// InversePDF returns the -1 sentinel for unsampleable shapes
func (p *Plane) InversePDF() float64 { return -1 }

// Sample returns the origin; planes have no area distribution
func (p *Plane) Sample(sampler core.Sampler) core.Vec3 { return core.Vec3{} }

// SampleGrid fills the grid with the origin
func (p *Plane) SampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3) {
	for i := 0; i < s1*s2; i++ {
		samples[i] = core.Vec3{}
	}
}
