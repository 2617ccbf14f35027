package renderer

import (
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width               int
	Height              int
	SamplesPerPixel     int              // Camera rays per pixel
	LightSamples        int              // Requested samples per area light
	TotalSamples        int              // Total camera rays traced
	LogAverageLuminance float64          // Scene key used by the tone mapper
	AverageLuminance    float64          // Mean luminance of the encoded frame
	RenderTime          time.Duration    // Wall time including tone mapping
	Integrator          integrator.Stats // Path event counters
}

// PixelStats accumulates the samples of one pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean relative luminance of an 8-bit
// image, treating stored values as linear
func CalculateAverageLuminance(img image.Image) float64 {
	b := img.Bounds()
	count := b.Dx() * b.Dy()
	if count == 0 {
		return 0
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/65535, float64(g)/65535, float64(bl)/65535)
			sum += c.Luminance()
		}
	}
	return sum / float64(count)
}
