package loaders

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// SaveImage writes img to filename, picking the encoder from the extension:
// .ppm (binary P6), .png or .webp (lossless). Missing parent directories
// are created.
func SaveImage(filename string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(filename))

	var encode func(f *os.File) error
	switch ext {
	case ".ppm":
		encode = func(f *os.File) error { return EncodePPM(f, img) }
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".webp":
		encode = func(f *os.File) error { return nativewebp.Encode(f, img, nil) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, ext)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("loaders: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("loaders: create %s: %w", filename, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("loaders: encode %s: %w", filename, err)
	}
	return f.Close()
}

// SupportedOutputs lists the file extensions accepted by SaveImage
func SupportedOutputs() []string {
	return []string{".ppm", ".png", ".webp"}
}
