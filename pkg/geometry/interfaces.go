package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NoHit is the sentinel distance returned when a ray misses a shape
const NoHit = -1.0

// parallelEpsilon bounds |d·n| below which a ray is treated as parallel to a plane
const parallelEpsilon = 1e-5

// Shape is an implicit surface that can be intersected, shaded and, when
// finite, sampled as an area light
type Shape interface {
	// Intersect returns the distance along the ray to the surface. A
	// non-positive value means no usable hit.
	Intersect(ray core.Ray) float64

	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// UVAt returns the surface parameterization used for texture lookup
	UVAt(point core.Vec3) (u, v float64)

	// IsFinite reports whether the shape has a bounded area and can be sampled
	IsFinite() bool

	// Sample returns one uniformly distributed point on the surface
	Sample(sampler core.Sampler) core.Vec3

	// SampleGrid fills samples with s1*s2 stratified points, one jittered
	// sample per grid cell, rows (s2) outer and columns (s1) inner
	SampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3)

	// InversePDF returns the surface area, or -1 for infinite shapes
	InversePDF() float64

	// Material returns the shared material of the shape
	Material() material.Material
}

// stratify returns the jittered grid coordinates of cell (nx, ny)
func stratify(sampler core.Sampler, nx, ny, s1, s2 int) (float64, float64) {
	r1 := (float64(nx) + sampler.Get1D()) / float64(s1)
	r2 := (float64(ny) + sampler.Get1D()) / float64(s2)
	return r1, r2
}

// sampleGrid walks an s1 x s2 grid and maps each jittered cell through fn
func sampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3, fn func(r1, r2 float64) core.Vec3) {
	i := 0
	for ny := 0; ny < s2; ny++ {
		for nx := 0; nx < s1; nx++ {
			r1, r2 := stratify(sampler, nx, ny, s1, s2)
			samples[i] = fn(r1, r2)
			i++
		}
	}
}

// planeDistance intersects a ray with the plane through point with the given
// normal. Returns NoHit for near-parallel rays.
func planeDistance(ray core.Ray, point, normal core.Vec3) float64 {
	don := ray.Direction.Dot(normal)
	if don > -parallelEpsilon && don < parallelEpsilon {
		return NoHit
	}
	return -ray.Origin.Subtract(point).Dot(normal) / don
}

// planeFrame builds an orthonormal frame from a normal and a tangent hint.
// The bitangent is n×t and the normal is re-derived as t×b.
func planeFrame(normal, tangent core.Vec3) (n, t, b core.Vec3) {
	t = tangent.Normalize()
	n = normal.Normalize()
	b = n.Cross(t).Normalize()
	n = t.Cross(b).Normalize()
	return n, t, b
}
