package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere scene layout, exported for regression tests
var (
	SphereSceneCenter     = core.NewVec3(0, 0, 2)
	SphereSceneRadius     = 1.0
	SphereSceneAlbedo     = core.NewVec3(0.8, 0.3, 0.2)
	SphereSceneLight      = core.NewVec3(-2, 3, -1)
	SphereSceneBackground = core.NewVec3(0.05, 0.05, 0.08)
)

// NewSphereScene creates a single diffuse sphere lit by one point light
// against a dim constant environment. It has no area lights.
func NewSphereScene() *Scene {
	s := NewWithEnvironment(material.NewConstantEnvironmentMap(SphereSceneBackground))

	diffuse := material.NewSolidMaterial(SphereSceneAlbedo, material.DefaultDiffuseFactor)
	s.AddObject(geometry.NewSphere(SphereSceneCenter, SphereSceneRadius, diffuse))
	s.AddLight(lights.NewColoredPointLight(SphereSceneLight, core.NewVec3(1, 1, 1), 4))

	return s
}

// NewEllipseScene places a sphere on an infinite ground plane, lit by a
// directional light and an emissive ellipse overhead
func NewEllipseScene() *Scene {
	s := NewWithEnvironment(material.NewConstantEnvironmentMap(core.NewVec3(0.1, 0.12, 0.2)))
	s.Camera = geometry.NewCamera(70, core.NewVec3(0, 1, -3), core.NewVec3(0, -0.3, 1), core.NewVec3(0, 1, 0))

	ground := material.NewSolidMaterial(core.NewVec3(0.7, 0.7, 0.65), 0.5)
	ball := material.NewSolidMaterial(core.NewVec3(0.2, 0.4, 0.8), 0.6)
	lamp := material.NewEmissiveSolidMaterial(core.NewVec3(1, 1, 1), 0.1, core.NewVec3(6, 5.5, 5))

	s.AddObject(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, -0.3, 1), 0.7, ball))
	s.AddObject(geometry.NewEllipseFromTangent(core.NewVec3(0, 2, 1), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), 1, 0.5, lamp))

	s.AddLight(lights.NewColoredDirectionalLight(core.NewVec3(1, -1, 1), core.NewVec3(1, 0.95, 0.85), 0.6))

	return s
}
