package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEncodePixel(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected byte
	}{
		{"black", 0, 0},
		{"negative clamps", -0.5, 0},
		{"white", 1, 255},
		{"overexposed clamps", 4, 255},
		{"linear segment rounds down", 0.001, 3},
		{"linear segment rounds up", 0.0015, 5},
		{"half linear", 0.5, 188},
		{"not a number", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodePixel(core.NewVec3(tt.linear, tt.linear, tt.linear))
			if got != [3]byte{tt.expected, tt.expected, tt.expected} {
				t.Errorf("Expected %d, got %v", tt.expected, got)
			}
		})
	}
}

func TestToneMapper_LogAverage(t *testing.T) {
	tm := NewToneMapper(3)
	colors := []core.Vec3{core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(2, 1, 0.1), {}}

	var logSum float64
	for _, c := range colors {
		tm.Add(c)
		logSum += math.Log(core.RGBToXYZ(c).Y + 1e-6)
	}

	expected := math.Exp(logSum / 3)
	if math.Abs(tm.LogAverage()-expected) > 1e-12 {
		t.Errorf("Expected log-average %g, got %g", expected, tm.LogAverage())
	}
	if tm.Len() != 3 {
		t.Errorf("Expected 3 pixels, got %d", tm.Len())
	}
	if NewToneMapper(0).LogAverage() != 0 {
		t.Error("Expected zero log-average for an empty tone mapper")
	}
}

// TestToneMapper_PreservesChromaticity maps a uniform image: the output must
// be the input color scaled to the key luminance
func TestToneMapper_PreservesChromaticity(t *testing.T) {
	input := core.NewVec3(0.9, 0.4, 0.1)
	tm := NewToneMapper(4)
	for i := 0; i < 4; i++ {
		tm.Add(input)
	}

	y := core.RGBToXYZ(input).Y
	l := y * DefaultKey / (y + 1e-6)
	scale := l / (1 + l) / y

	for i, got := range tm.Map() {
		expected := input.Multiply(scale)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected, got)
		}
	}
}

func TestToneMapper_Black(t *testing.T) {
	tm := NewToneMapper(2)
	tm.Add(core.Vec3{})
	tm.Add(core.NewVec3(1, 1, 1))

	out := tm.Map()
	if out[0] != (core.Vec3{}) {
		t.Errorf("Expected black to stay black, got %v", out[0])
	}
	if out[1].X <= 0 || math.Abs(out[1].X-out[1].Y) > 1e-9 || math.Abs(out[1].Y-out[1].Z) > 1e-9 {
		t.Errorf("Expected a neutral grey for white input, got %v", out[1])
	}
}

func TestToneMapper_NaNCountsAsBlack(t *testing.T) {
	withNaN := NewToneMapper(2)
	withNaN.Add(core.NewVec3(math.NaN(), 0.5, 0.5))
	withNaN.Add(core.NewVec3(1, 1, 1))

	withBlack := NewToneMapper(2)
	withBlack.Add(core.Vec3{})
	withBlack.Add(core.NewVec3(1, 1, 1))

	if withNaN.LogAverage() != withBlack.LogAverage() {
		t.Errorf("Expected log-average %f, got %f", withBlack.LogAverage(), withNaN.LogAverage())
	}

	got, want := withNaN.Map(), withBlack.Map()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if EncodePixel(got[0]) != [3]byte{} {
		t.Errorf("Expected the NaN pixel to encode as black, got %v", EncodePixel(got[0]))
	}
}

func TestToneMapper_Compresses(t *testing.T) {
	tm := NewToneMapper(2)
	tm.Add(core.NewVec3(0.01, 0.01, 0.01))
	tm.Add(core.NewVec3(1000, 1000, 1000))

	for i, c := range tm.Map() {
		if c.Luminance() >= 1 {
			t.Errorf("Pixel %d: expected display luminance below 1, got %f", i, c.Luminance())
		}
	}
}
