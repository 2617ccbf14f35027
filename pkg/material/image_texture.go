package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides color from a 2D raster of linear RGB values
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
	FlipV  bool        // Sample with v mirrored

	valid bool
}

// NewImageTexture creates a texture from linear RGB pixels
func NewImageTexture(width, height int, pixels []core.Vec3, flipV bool) *Texture {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return InvalidTexture()
	}
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		FlipV:  flipV,
		valid:  true,
	}
}

// NewSolidTexture creates a 1x1 texture holding a single color
func NewSolidTexture(color core.Vec3) *Texture {
	return NewImageTexture(1, 1, []core.Vec3{color}, false)
}

// InvalidTexture returns a texture that samples as black. It stands in for
// images that failed to load.
func InvalidTexture() *Texture {
	return &Texture{}
}

// IsValid reports whether the texture holds usable data
func (t *Texture) IsValid() bool {
	return t != nil && t.valid
}

// Sample returns the texel at (u, v) using nearest lookup. Coordinates wrap
// around the raster in both directions.
func (t *Texture) Sample(u, v float64) core.Vec3 {
	if !t.IsValid() {
		return core.Vec3{}
	}
	if t.FlipV {
		v = 1 - v
	}

	x := wrap(int(u*float64(t.Width)), t.Width)
	y := wrap(int(v*float64(t.Height)), t.Height)
	return t.Pixels[y*t.Width+x]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
