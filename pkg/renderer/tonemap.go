package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	// DefaultKey is the middle-grey target of the global operator
	DefaultKey = 0.18

	// logDelta keeps the log-average finite for black pixels
	logDelta = 1e-6
)

// chromaticity stores a pixel as CIE xyY
type chromaticity struct {
	x, y float64
	lum  float64
}

// ToneMapper applies Reinhard's global operator to luminance only, keeping
// each pixel's chromaticity
type ToneMapper struct {
	Key float64

	pixels []chromaticity
	logSum float64
}

// NewToneMapper creates a tone mapper with room for n pixels
func NewToneMapper(n int) *ToneMapper {
	return &ToneMapper{
		Key:    DefaultKey,
		pixels: make([]chromaticity, 0, n),
	}
}

// Add records one linear RGB pixel. Pixels with no energy are stored with
// the equal-energy chromaticity (1/3, 1/3). A NaN pixel is recorded as black
// so it cannot poison the log-average of the whole frame.
func (tm *ToneMapper) Add(rgb core.Vec3) {
	xyz := core.RGBToXYZ(rgb)
	if math.IsNaN(xyz.X + xyz.Y + xyz.Z) {
		xyz = core.Vec3{}
	}
	c := chromaticity{x: 1.0 / 3, y: 1.0 / 3, lum: xyz.Y}

	if sum := xyz.X + xyz.Y + xyz.Z; sum > 0 {
		factor := 1 / sum
		c.x = xyz.X * factor
		c.y = xyz.Y * factor
	}

	tm.pixels = append(tm.pixels, c)
	tm.logSum += math.Log(max(xyz.Y, 0) + logDelta)
}

// Len returns the number of recorded pixels
func (tm *ToneMapper) Len() int {
	return len(tm.pixels)
}

// LogAverage returns the geometric mean luminance exp(Σ log(Y + δ) / N)
func (tm *ToneMapper) LogAverage() float64 {
	if len(tm.pixels) == 0 {
		return 0
	}
	return math.Exp(tm.logSum / float64(len(tm.pixels)))
}

// Map returns the display-linear RGB of every recorded pixel in order
func (tm *ToneMapper) Map() []core.Vec3 {
	out := make([]core.Vec3, len(tm.pixels))
	lavg := tm.LogAverage()

	for i, c := range tm.pixels {
		if c.y <= 0 || lavg <= 0 {
			continue
		}

		l := c.lum * tm.Key / lavg
		l = l / (1 + l)

		xyz := core.Vec3{
			X: l / c.y * c.x,
			Y: l,
			Z: l / c.y * (1 - c.x - c.y),
		}
		out[i] = core.XYZToRGB(xyz)
	}

	return out
}

// EncodePixel applies the sRGB curve and quantizes to 8 bits with rounding
func EncodePixel(rgb core.Vec3) [3]byte {
	return [3]byte{encodeChannel(rgb.X), encodeChannel(rgb.Y), encodeChannel(rgb.Z)}
}

func encodeChannel(c float64) byte {
	if math.IsNaN(c) {
		return 0
	}
	v := min(255, max(0, 255*core.SRGBEncode(c)))
	return byte(v + 0.5)
}
