package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Ellipse is a finite oriented ellipse centered at Center with semi-axes
// along its tangent and bitangent
type Ellipse struct {
	Center core.Vec3

	normal        core.Vec3
	axisT         core.Vec3
	axisB         core.Vec3
	semiTangent   float64
	semiBitangent float64
	inversePDF    float64
	material      material.Material
}

// NewEllipse creates an ellipse from an explicit frame
func NewEllipse(center, normal, tangent, bitangent core.Vec3, semiTangent, semiBitangent float64, mat material.Material) *Ellipse {
	e := &Ellipse{
		Center:   center,
		normal:   normal.Normalize(),
		axisT:    tangent.Normalize(),
		axisB:    bitangent.Normalize(),
		material: mat,
	}
	e.SetSemiAxes(semiTangent, semiBitangent)
	return e
}

// NewEllipseFromTangent creates an ellipse whose bitangent is derived as
// normal × tangent
func NewEllipseFromTangent(center, normal, tangent core.Vec3, semiTangent, semiBitangent float64, mat material.Material) *Ellipse {
	n, t, b := planeFrame(normal, tangent)
	e := &Ellipse{
		Center:   center,
		normal:   n,
		axisT:    t,
		axisB:    b,
		material: mat,
	}
	e.SetSemiAxes(semiTangent, semiBitangent)
	return e
}

// SemiAxes returns the semi-axis lengths along tangent and bitangent
func (e *Ellipse) SemiAxes() (float64, float64) {
	return e.semiTangent, e.semiBitangent
}

// SetSemiAxes updates the semi-axes and the cached area
func (e *Ellipse) SetSemiAxes(semiTangent, semiBitangent float64) {
	e.semiTangent = semiTangent
	e.semiBitangent = semiBitangent
	e.inversePDF = math.Pi * semiTangent * semiBitangent
}

// Intersect tests the supporting plane, then (dT/a)² + (dB/b)² ≤ 1
func (e *Ellipse) Intersect(ray core.Ray) float64 {
	t := planeDistance(ray, e.Center, e.normal)
	if t < 0 {
		return NoHit
	}

	dT, dB := e.local(ray.At(t))
	qT := dT * dT / (e.semiTangent * e.semiTangent)
	qB := dB * dB / (e.semiBitangent * e.semiBitangent)
	if qT+qB > 1 {
		return NoHit
	}
	return t
}

func (e *Ellipse) NormalAt(point core.Vec3) core.Vec3 { return e.normal }
func (e *Ellipse) IsFinite() bool                     { return true }
func (e *Ellipse) InversePDF() float64                { return e.inversePDF }
func (e *Ellipse) Material() material.Material        { return e.material }

// UVAt maps the bounding box of the ellipse onto [0, 1]²
func (e *Ellipse) UVAt(point core.Vec3) (float64, float64) {
	dT, dB := e.local(point)
	return dT/(2*e.semiTangent) + 0.5, dB/(2*e.semiBitangent) + 0.5
}

// Sample returns a uniformly distributed point on the ellipse
func (e *Ellipse) Sample(sampler core.Sampler) core.Vec3 {
	u1 := sampler.Get1D()
	u2 := sampler.Get1D()
	return e.pointAt(u1, u2)
}

// SampleGrid draws stratified points on the ellipse
func (e *Ellipse) SampleGrid(sampler core.Sampler, s1, s2 int, samples []core.Vec3) {
	sampleGrid(sampler, s1, s2, samples, e.pointAt)
}

// pointAt maps the unit square to the ellipse with area-preserving polar
// coordinates: r = √r1, θ = 2π·r2
func (e *Ellipse) pointAt(r1, r2 float64) core.Vec3 {
	r := math.Sqrt(r1)
	theta := 2 * math.Pi * r2
	x := r * math.Cos(theta) * e.semiTangent
	y := r * math.Sin(theta) * e.semiBitangent
	return e.Center.Add(e.axisT.Multiply(x)).Add(e.axisB.Multiply(y))
}

func (e *Ellipse) local(point core.Vec3) (float64, float64) {
	rel := point.Subtract(e.Center)
	return rel.Dot(e.axisT), rel.Dot(e.axisB)
}
