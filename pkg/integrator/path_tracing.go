package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with direct
// lighting from punctual lights and next-event estimation on area lights.
// It is not safe for concurrent use.
type PathTracingIntegrator struct {
	config       Config
	s1, s2       int
	lightSamples []core.Vec3
	stats        Stats
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	s1, s2 := LightGrid(config.LightSamples)
	return &PathTracingIntegrator{
		config:       config,
		s1:           s1,
		s2:           s2,
		lightSamples: make([]core.Vec3, s1*s2),
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// Stats returns the counters gathered since the last ResetStats
func (pt *PathTracingIntegrator) Stats() Stats {
	return pt.stats
}

// ResetStats clears the counters
func (pt *PathTracingIntegrator) ResetStats() {
	pt.stats = Stats{}
}

// surfaceVertex is the shading context at a path vertex
type surfaceVertex struct {
	shape   geometry.Shape
	point   core.Vec3
	normal  core.Vec3
	tangent core.Vec3
	bitang  core.Vec3
	wo      core.Vec3 // local space
	albedo  core.Vec3
	brdf    material.BRDF
}

func (v *surfaceVertex) toLocal(world core.Vec3) core.Vec3 {
	return core.WorldToLocal(world, v.normal, v.tangent, v.bitang)
}

// RayColor computes the color for a single camera ray. Emission on hit and
// next-event estimation both contribute without MIS weighting, so an area
// light reached by a bounce is counted by both strategies.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, areaLights []geometry.Shape, sampler core.Sampler) core.Vec3 {
	pt.stats.CameraPaths++

	var color core.Vec3
	beta := core.NewVec3(1, 1, 1)

	for bounces := 0; pt.config.MaxDepth <= 0 || bounces < pt.config.MaxDepth; bounces++ {
		shape, t := s.Intersect(ray)
		if shape == nil {
			pt.stats.EnvironmentHits++
			color = color.Add(beta.MultiplyVec(s.EnvironmentMap().Sample(ray.Direction)))
			break
		}

		vertex := pt.newSurfaceVertex(ray, shape, t)
		u, v := shape.UVAt(vertex.point)
		vertex.albedo = shape.Material().Color(u, v)

		color = color.Add(pt.directLighting(s, &vertex, beta))
		color = color.Add(pt.areaLighting(s, areaLights, &vertex, beta, sampler))
		color = color.Add(beta.MultiplyVec(shape.Material().Emittance(u, v)))

		// Indirect bounce
		localWi, pdf, f := vertex.brdf.SampleF(vertex.wo, sampler)
		if f < MinScatter || pdf == 0 {
			break
		}

		wi := core.LocalToWorld(localWi, vertex.normal, vertex.tangent, vertex.bitang)
		beta = beta.MultiplyVec(vertex.albedo).Multiply(f * math.Abs(wi.Dot(vertex.normal)) / pdf)
		ray = core.NewRay(vertex.point.Add(wi.Multiply(RayOffset)), wi)
		pt.stats.Bounces++

		if bounces > 0 {
			var survived bool
			beta, survived = RussianRoulette(beta, sampler.Get1D(), RouletteProbability)
			if !survived {
				pt.stats.RouletteTerminations++
				break
			}
		}
	}

	return color
}

func (pt *PathTracingIntegrator) newSurfaceVertex(ray core.Ray, shape geometry.Shape, t float64) surfaceVertex {
	point := ray.At(t)
	normal := shape.NormalAt(point)
	tangent, bitangent := core.OrthonormalBasis(normal)

	vertex := surfaceVertex{
		shape:   shape,
		point:   point,
		normal:  normal,
		tangent: tangent,
		bitang:  bitangent,
		brdf:    shape.Material().BRDF(),
	}
	vertex.wo = vertex.toLocal(ray.Direction.Negate())
	return vertex
}

// directLighting sums the unoccluded contributions of the punctual lights
func (pt *PathTracingIntegrator) directLighting(s *scene.Scene, vertex *surfaceVertex, beta core.Vec3) core.Vec3 {
	var color core.Vec3
	weight := beta.MultiplyVec(vertex.albedo)

	for _, light := range s.Lights() {
		info := light.LightingInformation(vertex.point, vertex.normal)
		pt.stats.ShadowRays++
		if s.OcclusionTest(info.ShadowRay, info.OcclusionLimit) {
			pt.stats.OccludedShadowRays++
			continue
		}

		f := vertex.brdf.F(vertex.wo, vertex.toLocal(info.ShadowRay.Direction))
		color = color.Add(weight.MultiplyVec(info.DiffuseColor).Multiply(f * info.Attenuation))
	}

	return color
}

// areaLighting estimates the light arriving from every area light except the
// shape being shaded, using a stratified grid of samples on each light. The
// per-light sum is divided by the grid size and the light's inverse PDF.
func (pt *PathTracingIntegrator) areaLighting(s *scene.Scene, areaLights []geometry.Shape, vertex *surfaceVertex, beta core.Vec3, sampler core.Sampler) core.Vec3 {
	if pt.s1 <= 0 || pt.s2 <= 0 {
		return core.Vec3{}
	}

	var color core.Vec3
	count := float64(len(pt.lightSamples))
	weight := beta.MultiplyVec(vertex.albedo)

	for _, light := range areaLights {
		if light == vertex.shape {
			continue
		}

		light.SampleGrid(sampler, pt.s1, pt.s2, pt.lightSamples)

		var sum core.Vec3
		for _, samplePoint := range pt.lightSamples {
			wi := samplePoint.Subtract(vertex.point)
			distanceSq := wi.LengthSquared()
			if distanceSq == 0 {
				continue
			}
			distance := math.Sqrt(distanceSq)
			wi = wi.Divide(distance)

			shadowRay := core.NewRay(vertex.point.Add(wi.Multiply(RayOffset)), wi)
			pt.stats.ShadowRays++
			if s.OcclusionTest(shadowRay, distance*AreaOcclusionScale) {
				pt.stats.OccludedShadowRays++
				continue
			}

			cosLight := core.Saturate(wi.Negate().Dot(light.NormalAt(samplePoint)))
			cosPoint := core.Saturate(wi.Dot(vertex.normal))
			uL, vL := light.UVAt(samplePoint)
			f := vertex.brdf.F(vertex.wo, vertex.toLocal(wi))

			emittance := light.Material().Emittance(uL, vL)
			sum = sum.Add(emittance.Multiply(cosPoint * cosLight * f / distanceSq))
		}

		color = color.Add(weight.MultiplyVec(sum).Divide(count * light.InversePDF()))
	}

	return color
}
