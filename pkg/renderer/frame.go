package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame is a rendered image: 8-bit interleaved RGB, row-major, top row first
type Frame struct {
	Width  int
	Height int
	Pix    []byte

	// Linear holds the averaged radiance of each pixel before tone mapping
	Linear []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
		Linear: make([]core.Vec3, width*height),
	}
}

// SetPixel stores an encoded color for pixel index i = y*Width + x
func (f *Frame) SetPixel(i int, rgb [3]byte) {
	copy(f.Pix[3*i:3*i+3], rgb[:])
}

// Pixel returns the encoded color at (x, y)
func (f *Frame) Pixel(x, y int) [3]byte {
	i := 3 * (y*f.Width + x)
	return [3]byte{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i := 0; i < f.Width*f.Height; i++ {
		img.Pix[4*i] = f.Pix[3*i]
		img.Pix[4*i+1] = f.Pix[3*i+1]
		img.Pix[4*i+2] = f.Pix[3*i+2]
		img.Pix[4*i+3] = 0xff
	}
	return img
}
