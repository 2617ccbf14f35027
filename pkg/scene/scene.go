package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MaxDistance bounds primary and bounce ray intersections
const MaxDistance = 1e7

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera *geometry.Camera

	shapes []geometry.Shape
	lights []lights.Light
	env    *material.EnvironmentMap
}

// New creates an empty scene with a black environment and the default camera
func New() *Scene {
	return NewWithEnvironment(material.NewBlackEnvironmentMap())
}

// NewWithEnvironment creates an empty scene lit by the given environment map
func NewWithEnvironment(env *material.EnvironmentMap) *Scene {
	return &Scene{
		Camera: geometry.NewDefaultCamera(),
		shapes: make([]geometry.Shape, 0),
		lights: make([]lights.Light, 0),
		env:    env,
	}
}

// AddObject appends a shape. Insertion order breaks intersection ties.
func (s *Scene) AddObject(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddLight appends a punctual light
func (s *Scene) AddLight(light lights.Light) {
	s.lights = append(s.lights, light)
}

// SetEnvironmentMap replaces the environment. A nil map is treated as black.
func (s *Scene) SetEnvironmentMap(env *material.EnvironmentMap) {
	if env == nil {
		env = material.NewBlackEnvironmentMap()
	}
	s.env = env
}

func (s *Scene) Objects() []geometry.Shape                { return s.shapes }
func (s *Scene) Lights() []lights.Light                   { return s.lights }
func (s *Scene) EnvironmentMap() *material.EnvironmentMap { return s.env }

// Intersect returns the closest shape hit in front of the ray origin and its
// distance. Ties keep the shape added first. Returns nil when nothing is hit.
func (s *Scene) Intersect(ray core.Ray) (geometry.Shape, float64) {
	closest := MaxDistance
	var hit geometry.Shape

	for _, shape := range s.shapes {
		t := shape.Intersect(ray)
		if t > 0 && t < closest {
			closest = t
			hit = shape
		}
	}

	return hit, closest
}

// OcclusionTest reports whether any shape blocks the ray before maxT.
// A negative maxT tests the whole ray.
func (s *Scene) OcclusionTest(ray core.Ray, maxT float64) bool {
	for _, shape := range s.shapes {
		t := shape.Intersect(ray)
		if t > 0 && (t < maxT || maxT < 0) {
			return true
		}
	}
	return false
}

// AreaLights returns the finite emissive shapes in scene order
func (s *Scene) AreaLights() []geometry.Shape {
	var areaLights []geometry.Shape
	for _, shape := range s.shapes {
		if shape.IsFinite() && shape.Material().IsEmissive() {
			areaLights = append(areaLights, shape)
		}
	}
	return areaLights
}
