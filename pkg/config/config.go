package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Options holds everything needed to render one frame
type Options struct {
	Scene      string `json:"scene"`
	TextureDir string `json:"texture_dir"`
	Output     string `json:"output"`
	LogLevel   string `json:"log_level"`

	// Render settings
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samples_per_pixel"`
	LightSamples    int   `json:"light_samples"`
	MaxDepth        int   `json:"max_depth"`
	Seed            int64 `json:"seed"`
}

// Default returns the options used when neither a file nor flags set a value
func Default() Options {
	return Options{
		Scene:           "room",
		TextureDir:      "textures",
		Output:          "render.ppm",
		LogLevel:        "notice",
		Width:           1920,
		Height:          1080,
		SamplesPerPixel: 16,
		LightSamples:    8,
		MaxDepth:        0,
		Seed:            0,
	}
}

// Load reads a JSON config file. Fields not set in the file keep their
// default values.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	opts := Default()
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return opts, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers leave the file setting alone.
type Flags struct {
	Scene           string
	TextureDir      string
	Output          string
	Width           int
	Height          int
	SamplesPerPixel int
	LightSamples    *int
	MaxDepth        *int
	Seed            int64
}

// Resolve applies CLI flags on top of the loaded options
func (o *Options) Resolve(flags Flags) {
	if flags.Scene != "" {
		o.Scene = flags.Scene
	}
	if flags.TextureDir != "" {
		o.TextureDir = flags.TextureDir
	}
	if flags.Output != "" {
		o.Output = flags.Output
	}
	if flags.Width > 0 {
		o.Width = flags.Width
	}
	if flags.Height > 0 {
		o.Height = flags.Height
	}
	if flags.SamplesPerPixel > 0 {
		o.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.LightSamples != nil {
		o.LightSamples = *flags.LightSamples
	}
	if flags.MaxDepth != nil {
		o.MaxDepth = *flags.MaxDepth
	}
	if flags.Seed != 0 {
		o.Seed = flags.Seed
	}
}

// Validate checks the options before a render starts
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, o.Width, o.Height)
	}
	if o.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel %d < 1", ErrInvalidSamples, o.SamplesPerPixel)
	}
	if o.LightSamples < 0 {
		return fmt.Errorf("%w: light samples %d < 0", ErrInvalidSamples, o.LightSamples)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d < 0", ErrInvalidSamples, o.MaxDepth)
	}

	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(o.Output))
	if !slices.Contains(loaders.SupportedOutputs(), ext) {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, o.Output)
	}
	return nil
}
