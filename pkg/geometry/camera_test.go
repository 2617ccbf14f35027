package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_DefaultFrame(t *testing.T) {
	camera := NewDefaultCamera()

	if camera.right != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected right (1,0,0), got %v", camera.right)
	}
	if camera.up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected up (0,1,0), got %v", camera.up)
	}
	if math.Abs(camera.tanHalfFOV-1) > 1e-12 {
		t.Errorf("Expected tan(45°) = 1, got %f", camera.tanHalfFOV)
	}
}

func TestCamera_GetCameraRay(t *testing.T) {
	camera := NewDefaultCamera()

	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		{"center", 0, 0, core.NewVec3(0, 0, 1)},
		{"right edge", 1, 0, core.NewVec3(1, 0, 1).Normalize()},
		{"top edge", 0, 1, core.NewVec3(0, 1, 1).Normalize()},
		{"bottom left", -1, -1, core.NewVec3(-1, -1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetCameraRay(tt.x, tt.y)
			if ray.Origin != core.NewVec3(0, 0, -1) {
				t.Errorf("Expected origin at camera position, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(60, core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))

	// The ray through the right edge must make half the FOV with forward
	ray := camera.GetCameraRay(1, 0)
	angle := math.Acos(ray.Direction.Dot(camera.Forward())) * 180 / math.Pi
	if math.Abs(angle-30) > 1e-9 {
		t.Errorf("Expected 30° edge angle, got %f", angle)
	}
	if camera.FOV() != 60 {
		t.Errorf("Expected FOV 60, got %f", camera.FOV())
	}
}

func TestCamera_NonOrthogonalUp(t *testing.T) {
	camera := NewCamera(90, core.Vec3{}, core.NewVec3(0, 0, 2), core.NewVec3(0, 1, 1))

	if math.Abs(camera.up.Dot(camera.forward)) > 1e-12 {
		t.Errorf("Expected up orthogonal to forward, got dot %f", camera.up.Dot(camera.forward))
	}
	if math.Abs(camera.up.Length()-1) > 1e-12 {
		t.Errorf("Expected unit up, got length %f", camera.up.Length())
	}
}
