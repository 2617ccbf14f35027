package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Rectangle is a finite oriented rectangle. It spans
// [0, SizeTangent] along the tangent and [0, SizeBitangent] along the
// bitangent, starting at Corner.
type Rectangle struct {
	Corner core.Vec3

	normal        core.Vec3
	tangent       core.Vec3
	bitangent     core.Vec3
	sizeTangent   float64
	sizeBitangent float64
	inversePDF    float64
	material      material.Material
}

// NewRectangle creates a rectangle from an explicit frame. All three axes
// are normalized as given.
func NewRectangle(corner, normal, tangent, bitangent core.Vec3, sizeTangent, sizeBitangent float64, mat material.Material) *Rectangle {
	r := &Rectangle{
		Corner:    corner,
		normal:    normal.Normalize(),
		tangent:   tangent.Normalize(),
		bitangent: bitangent.Normalize(),
		material:  mat,
	}
	r.SetSize(sizeTangent, sizeBitangent)
	return r
}

// NewRectangleFromTangent creates a rectangle whose bitangent is derived as
// normal × tangent
func NewRectangleFromTangent(corner, normal, tangent core.Vec3, sizeTangent, sizeBitangent float64, mat material.Material) *Rectangle {
	n, t, b := planeFrame(normal, tangent)
	r := &Rectangle{
		Corner:    corner,
		normal:    n,
		tangent:   t,
		bitangent: b,
		material:  mat,
	}
	r.SetSize(sizeTangent, sizeBitangent)
	return r
}

// Size returns the extents along tangent and bitangent
func (r *Rectangle) Size() (float64, float64) {
	return r.sizeTangent, r.sizeBitangent
}

// SetSize updates the extents and the cached area
func (r *Rectangle) SetSize(sizeTangent, sizeBitangent float64) {
	r.sizeTangent = sizeTangent
	r.sizeBitangent = sizeBitangent
	r.inversePDF = sizeTangent * sizeBitangent
}

// Intersect tests the supporting plane, then the in-plane bounds
func (r *Rectangle) Intersect(ray core.Ray) float64 {
	t := planeDistance(ray, r.Corner, r.normal)
	if t < 0 {
		return NoHit
	}

	dT, dB := r.local(ray.At(t))
	if dT < 0 || dT > r.sizeTangent || dB < 0 || dB > r.sizeBitangent {
		return NoHit
	}
	return t
}

func (r *Rectangle) NormalAt(point core.Vec3) core.Vec3 { return r.normal }
func (r *Rectangle) IsFinite() bool                     { return true }
func (r *Rectangle) InversePDF() float64                { return r.inversePDF }
func (r *Rectangle) Material() material.Material        { return r.material }

// UVAt returns the point's position as a fraction of each extent
func (r *Rectangle) UVAt(point core.Vec3) (float64, float64) {
	dT, dB := r.local(point)
	return dT / r.sizeTangent, dB / r.sizeBitangent
}

// Sample returns a uniformly distributed point on the rectangle
func (r *Rectangle) Sample(sampler core.Sampler) core.Vec3 {
	u1 := sampler.Get1D()
	u2 := sampler.Get1D()
	return r.pointAt(u1, u2)
}

// SampleGrid draws stratified points on the rectangle
func (r *Rectangle) SampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3) {
	sampleGrid(sampler, s1, s2, samples, r.pointAt)
}

func (r *Rectangle) pointAt(r1, r2 float64) core.Vec3 {
	return r.Corner.
		Add(r.tangent.Multiply(r1 * r.sizeTangent)).
		Add(r.bitangent.Multiply(r2 * r.sizeBitangent))
}

// local projects a world point onto the tangent and bitangent axes
func (r *Rectangle) local(point core.Vec3) (float64, float64) {
	rel := point.Subtract(r.Corner)
	return rel.Dot(r.tangent), rel.Dot(r.bitangent)
}
