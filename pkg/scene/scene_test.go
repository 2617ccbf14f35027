package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	white = material.NewSolidMaterial(core.NewVec3(1, 1, 1), 0.5)
	lamp  = material.NewEmissiveSolidMaterial(core.NewVec3(1, 1, 1), 0.1, core.NewVec3(5, 5, 5))
)

func TestScene_Intersect_Closest(t *testing.T) {
	s := New()
	far := geometry.NewSphere(core.NewVec3(0, 0, 10), 1, white)
	near := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white)
	s.AddObject(far)
	s.AddObject(near)

	hit, dist := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if hit != near {
		t.Fatalf("Expected the nearer sphere to be hit")
	}
	if math.Abs(dist-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestScene_Intersect_TieKeepsFirst(t *testing.T) {
	s := New()
	first := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white)
	second := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white)
	s.AddObject(first)
	s.AddObject(second)

	hit, _ := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if hit != first {
		t.Errorf("Expected the first added shape to win a tie")
	}
}

func TestScene_Intersect_Miss(t *testing.T) {
	s := New()
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, white))
	// Plane is behind the ray: negative distance must be ignored
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), white))
	// Beyond MaxDistance
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 2*MaxDistance), 1, white))

	if hit, _ := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); hit != nil {
		t.Errorf("Expected no hit, got %v", hit)
	}
}

func TestScene_OcclusionTest(t *testing.T) {
	s := New()
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	tests := []struct {
		name     string
		maxT     float64
		occluded bool
	}{
		{"blocker before limit", 10, true},
		{"blocker past limit", 3, false},
		{"unbounded", -1, true},
		{"limit at blocker", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.OcclusionTest(ray, tt.maxT); got != tt.occluded {
				t.Errorf("Expected occluded=%t, got %t", tt.occluded, got)
			}
		})
	}

	away := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if s.OcclusionTest(away, -1) {
		t.Error("Expected no occlusion for a ray pointing away")
	}
}

func TestScene_AreaLights(t *testing.T) {
	s := New()
	emissivePlane := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), lamp)
	rect := geometry.NewRectangleFromTangent(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), 1, 1, lamp)
	ellipse := geometry.NewEllipseFromTangent(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0), 1, 1, lamp)

	s.AddObject(emissivePlane)
	s.AddObject(geometry.NewSphere(core.Vec3{}, 1, white))
	s.AddObject(rect)
	s.AddObject(ellipse)

	areaLights := s.AreaLights()
	if len(areaLights) != 2 {
		t.Fatalf("Expected 2 area lights, got %d", len(areaLights))
	}
	if areaLights[0] != rect || areaLights[1] != ellipse {
		t.Errorf("Expected area lights in scene order")
	}
}

func TestScene_SetEnvironmentMap(t *testing.T) {
	s := New()
	if got := s.EnvironmentMap().Sample(core.NewVec3(0, 1, 0)); got != (core.Vec3{}) {
		t.Errorf("Expected black default environment, got %v", got)
	}

	s.SetEnvironmentMap(material.NewConstantEnvironmentMap(core.NewVec3(0.2, 0.3, 0.4)))
	if got := s.EnvironmentMap().Sample(core.NewVec3(1, 0, 0)); got != core.NewVec3(0.2, 0.3, 0.4) {
		t.Errorf("Expected constant environment, got %v", got)
	}

	s.SetEnvironmentMap(nil)
	if s.EnvironmentMap() == nil {
		t.Error("Expected nil environment to be replaced by black")
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			def, err := Builtin(name)
			if err != nil {
				t.Fatalf("Expected scene %q to be registered: %v", name, err)
			}
			s := def.Build(Options{TextureDir: t.TempDir(), Logger: log.New("scene-test")})
			if s == nil || len(s.Objects()) == 0 {
				t.Errorf("Expected scene %q to contain objects", name)
			}
			if s.Camera == nil {
				t.Errorf("Expected scene %q to have a camera", name)
			}
		})
	}

	if _, err := Builtin("teapot"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNewRoomScene_MissingTextures(t *testing.T) {
	s := NewRoomScene(t.TempDir(), nil)

	if len(s.Objects()) != 14 {
		t.Errorf("Expected 14 objects, got %d", len(s.Objects()))
	}
	if len(s.AreaLights()) != 1 {
		t.Errorf("Expected the lamp to be the only area light, got %d", len(s.AreaLights()))
	}

	// A wall with a missing texture shades black instead of failing
	if c := s.Objects()[0].Material().Color(0.5, 0.5); c != (core.Vec3{}) {
		t.Errorf("Expected black wall for missing texture, got %v", c)
	}
}

func TestNewSphereScene(t *testing.T) {
	s := NewSphereScene()

	if len(s.AreaLights()) != 0 {
		t.Errorf("Expected no area lights, got %d", len(s.AreaLights()))
	}
	if len(s.Lights()) != 1 {
		t.Errorf("Expected one point light, got %d", len(s.Lights()))
	}

	hit, _ := s.Intersect(s.Camera.GetCameraRay(0, 0))
	if hit == nil {
		t.Error("Expected the center camera ray to hit the sphere")
	}
}
