package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// constantSampler always returns the same value
type constantSampler float64

func (c constantSampler) Get1D() float64   { return float64(c) }
func (c constantSampler) Get2D() core.Vec2 { return core.NewVec2(float64(c), float64(c)) }

// recordingCamera records the screen coordinates it is asked for and fires
// every ray straight down +z from the origin
type recordingCamera struct {
	coords [][2]float64
}

func (c *recordingCamera) GetCameraRay(x, y float64) core.Ray {
	c.coords = append(c.coords, [2]float64{x, y})
	return core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
}

// flatIntegrator returns the same radiance for every ray
type flatIntegrator struct {
	color core.Vec3
	stats integrator.Stats
}

func (f *flatIntegrator) RayColor(ray core.Ray, s *scene.Scene, areaLights []geometry.Shape, sampler core.Sampler) core.Vec3 {
	f.stats.CameraPaths++
	return f.color
}

func (f *flatIntegrator) Stats() integrator.Stats { return f.stats }
func (f *flatIntegrator) ResetStats()             { f.stats = integrator.Stats{} }
