package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ProgressInterval is the number of pixels between progress log lines
const ProgressInterval = 500

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of camera rays per pixel
	LightSamples    int // Samples per area light per path vertex
	MaxDepth        int // Bounce cap, 0 for roulette-only termination
}

// DefaultSamplingConfig returns the default sample counts
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		LightSamples:    8,
		MaxDepth:        0,
	}
}

// CameraRayGenerator maps screen coordinates to primary rays. x spans
// [-aspect, aspect] left to right and y spans [-1, 1] bottom to top.
type CameraRayGenerator interface {
	GetCameraRay(x, y float64) core.Ray
}

var _ CameraRayGenerator = (*geometry.Camera)(nil)

// Renderer renders a scene into a tone-mapped 8-bit frame, one pixel at a
// time on the calling goroutine
type Renderer struct {
	width   int
	height  int
	aspect  float64
	config  SamplingConfig
	sampler core.Sampler
	logger  log.Logger

	integrator integrator.Integrator
}

// NewRenderer creates a renderer with the default sampling configuration
func NewRenderer(width, height int, sampler core.Sampler) *Renderer {
	r := &Renderer{
		sampler: sampler,
		logger:  log.New("renderer"),
	}
	r.Reset(width, height)
	r.SetSamplingConfig(DefaultSamplingConfig())
	return r
}

// SetSamplingConfig updates the sampling configuration
func (r *Renderer) SetSamplingConfig(config SamplingConfig) {
	r.config = config
	r.integrator = integrator.NewPathTracingIntegrator(integrator.Config{
		LightSamples: config.LightSamples,
		MaxDepth:     config.MaxDepth,
	})
}

// SamplingConfig returns the current sampling configuration
func (r *Renderer) SamplingConfig() SamplingConfig {
	return r.config
}

// SetLogger replaces the progress logger
func (r *Renderer) SetLogger(logger log.Logger) {
	r.logger = logger
}

// Reset changes the output resolution
func (r *Renderer) Reset(width, height int) {
	r.width = width
	r.height = height
	r.updateAspect()
}

func (r *Renderer) SetWidth(width int) {
	r.width = width
	r.updateAspect()
}

func (r *Renderer) SetHeight(height int) {
	r.height = height
	r.updateAspect()
}

func (r *Renderer) Width() int           { return r.width }
func (r *Renderer) Height() int          { return r.height }
func (r *Renderer) AspectRatio() float64 { return r.aspect }

func (r *Renderer) updateAspect() {
	if r.height > 0 {
		r.aspect = float64(r.width) / float64(r.height)
	}
}

// Render traces every pixel, rows top to bottom, then tone-maps and encodes
// the frame
func (r *Renderer) Render(s *scene.Scene, camera CameraRayGenerator) (*Frame, RenderStats) {
	start := time.Now()
	r.integrator.ResetStats()

	areaLights := s.AreaLights()
	spp := max(r.config.SamplesPerPixel, 1)
	total := r.width * r.height

	r.logger.Infof("Rendering %dx%d, %d samples per pixel, %d light samples, %d area lights",
		r.width, r.height, spp, r.config.LightSamples, len(areaLights))

	frame := NewFrame(r.width, r.height)
	toneMapper := NewToneMapper(total)

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			var pixel PixelStats
			for k := 0; k < spp; k++ {
				ray := camera.GetCameraRay(r.screenCoordinates(x, y))
				pixel.AddSample(r.integrator.RayColor(ray, s, areaLights, r.sampler))
			}

			color := pixel.GetColor()
			frame.Linear[y*r.width+x] = color
			toneMapper.Add(color)

			if done := y*r.width + x + 1; done%ProgressInterval == 0 {
				r.logger.Debugf("Progress: %d/%d pixels (%.1f%%)", done, total, 100*float64(done)/float64(total))
			}
		}
	}

	for i, c := range toneMapper.Map() {
		frame.SetPixel(i, EncodePixel(c))
	}

	stats := RenderStats{
		Width:               r.width,
		Height:              r.height,
		SamplesPerPixel:     spp,
		LightSamples:        r.config.LightSamples,
		TotalSamples:        total * spp,
		LogAverageLuminance: toneMapper.LogAverage(),
		AverageLuminance:    CalculateAverageLuminance(frame.Image()),
		RenderTime:          time.Since(start),
		Integrator:          r.integrator.Stats(),
	}
	r.logger.Infof("Rendered in %v", stats.RenderTime)

	return frame, stats
}

// screenCoordinates jitters a sample inside pixel (x, y). The horizontal
// offset is drawn before the vertical one.
func (r *Renderer) screenCoordinates(x, y int) (float64, float64) {
	u := r.sampler.Get1D()
	v := r.sampler.Get1D()
	rx := (2*((float64(x)+u)/float64(r.width)) - 1) * r.aspect
	ry := 1 - 2*((float64(y)+v)/float64(r.height))
	return rx, ry
}
