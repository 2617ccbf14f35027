package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "github.com/ftrvxmtrx/tga" // TGA decoder
	_ "golang.org/x/image/bmp"   // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first, channels in [0, 1]
}

// LoadImage decodes a PPM, PNG, JPEG, TGA, BMP or TIFF file. Channel values
// are returned as stored in the file, without any transfer-curve decoding.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", filename, err)
	}

	return imageDataFromImage(img), nil
}

func imageDataFromImage(img image.Image) *ImageData {
	src := toNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := src.PixOffset(x+src.Rect.Min.X, y+src.Rect.Min.Y)
			pixels[y*width+x] = core.NewVec3(
				float64(src.Pix[i])/255,
				float64(src.Pix[i+1])/255,
				float64(src.Pix[i+2])/255,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}

// toNRGBA converts any image to 8-bit non-premultiplied RGBA
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
