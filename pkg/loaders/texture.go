package loaders

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadTexture loads an sRGB-encoded image into a linear texture
func LoadTexture(filename string, flipV bool) (*material.Texture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}

	pixels := make([]core.Vec3, len(data.Pixels))
	for i, p := range data.Pixels {
		pixels[i] = core.SRGBDecodeVec(p)
	}

	return material.NewImageTexture(data.Width, data.Height, pixels, flipV), nil
}

// TextureOrInvalid loads a texture, logging failures and falling back to a
// texture that samples as black
func TextureOrInvalid(filename string, flipV bool, logger log.Logger) *material.Texture {
	texture, err := LoadTexture(filename, flipV)
	if err != nil {
		logger.Errorf("Texture (%s) could not be loaded: %v", filename, err)
		return material.InvalidTexture()
	}
	return texture
}
