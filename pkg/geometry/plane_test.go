package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), testMaterial)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 2},
		{"from below", core.NewVec3(3, -4, 2), core.NewVec3(0, 1, 0), 3},
		{"oblique", core.NewVec3(0, 0, 0), core.NewVec3(1, -1, 0), 1},
		{"pointing away", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plane.Intersect(core.NewRay(tt.origin, tt.direction))
			if math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestPlane_Intersect_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0.000001, 0))

	if got := plane.Intersect(ray); got != NoHit {
		t.Errorf("Expected NoHit for near-parallel ray, got %f", got)
	}
}

func TestPlane_NotSampleable(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, 3, 0), testMaterial)

	if plane.IsFinite() {
		t.Error("Expected plane to be infinite")
	}
	if plane.InversePDF() != -1 {
		t.Errorf("Expected -1 inverse PDF, got %f", plane.InversePDF())
	}
	if got := plane.Sample(newTestSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected origin sample, got %v", got)
	}

	samples := []core.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: 2}}
	plane.SampleGrid(newTestSampler(1), 2, 2, samples)
	for i, s := range samples {
		if s != (core.Vec3{}) {
			t.Errorf("Expected sample %d to be the origin, got %v", i, s)
		}
	}

	if n := plane.NormalAt(core.Vec3{}); n != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normalized normal, got %v", n)
	}
	if u, v := plane.UVAt(core.NewVec3(5, 2, 5)); u != 0 || v != 0 {
		t.Errorf("Expected (0,0) UV, got (%f,%f)", u, v)
	}
}
