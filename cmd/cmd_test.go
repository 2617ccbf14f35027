package cmd

import (
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// newRenderContext parses args against the render command flags
func newRenderContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.String("config", "", "")
	set.String("scene", "", "")
	set.String("textures", "", "")
	set.String("out", "", "")
	set.Int("width", 0, "")
	set.Int("height", 0, "")
	set.Int("spp", 0, "")
	set.Int("light-samples", 0, "")
	set.Int("max-depth", 0, "")
	set.Int64("seed", 0, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestResolveOptions_Defaults(t *testing.T) {
	opts, err := resolveOptions(newRenderContext(t))
	if err != nil {
		t.Fatalf("resolveOptions failed: %v", err)
	}
	if opts != config.Default() {
		t.Errorf("Expected %+v, got %+v", config.Default(), opts)
	}
}

func TestResolveOptions_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	content := `{"scene": "ellipse", "width": 64, "height": 48, "light_samples": 4}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	opts, err := resolveOptions(newRenderContext(t, "--config", path, "--width", "32", "--light-samples", "0", "--seed", "7"))
	if err != nil {
		t.Fatalf("resolveOptions failed: %v", err)
	}

	if opts.Scene != "ellipse" || opts.Height != 48 {
		t.Errorf("Expected file values to survive, got %+v", opts)
	}
	if opts.Width != 32 || opts.LightSamples != 0 || opts.Seed != 7 {
		t.Errorf("Expected flag values to win, got %+v", opts)
	}
}

func TestResolveOptions_Invalid(t *testing.T) {
	_, err := resolveOptions(newRenderContext(t, "--out", "frame.gif"))
	if !errors.Is(err, config.ErrInvalidOutput) {
		t.Errorf("Expected %v, got %v", config.ErrInvalidOutput, err)
	}
}

func TestRenderFrame_WritesImage(t *testing.T) {
	opts := config.Default()
	opts.Scene = "sphere"
	opts.Width = 8
	opts.Height = 6
	opts.SamplesPerPixel = 1
	opts.Seed = 42
	opts.Output = filepath.Join(t.TempDir(), "sphere.png")

	stats, err := renderFrame(opts)
	if err != nil {
		t.Fatalf("renderFrame failed: %v", err)
	}
	if stats.TotalSamples != 8*6 {
		t.Errorf("Expected %d samples, got %d", 8*6, stats.TotalSamples)
	}

	f, err := os.Open(opts.Output)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderFrame_UnknownScene(t *testing.T) {
	opts := config.Default()
	opts.Scene = "teapot"

	if _, err := renderFrame(opts); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected %v, got %v", scene.ErrUnknownScene, err)
	}
}

func TestFormatFrameStats(t *testing.T) {
	out := formatFrameStats(renderer.RenderStats{Width: 4, Height: 2, TotalSamples: 8})

	for _, want := range []string{"Resolution", "4x2", "Camera rays", "TOTAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatSceneList(t *testing.T) {
	out := formatSceneList(scene.Definitions())

	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected scene list to contain %q, got:\n%s", name, out)
		}
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name     string
		args     []string
		base     log.Level
		expected log.Level
	}{
		{"config level", nil, log.Warning, log.Warning},
		{"verbose", []string{"-v"}, log.Warning, log.Info},
		{"very verbose", []string{"-vv"}, log.Notice, log.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := flag.NewFlagSet("pathtrace", flag.ContinueOnError)
			global.Bool("v", false, "")
			global.Bool("vv", false, "")
			if err := global.Parse(tt.args); err != nil {
				t.Fatalf("Failed to parse flags: %v", err)
			}

			app := cli.NewApp()
			parent := cli.NewContext(app, global, nil)
			ctx := cli.NewContext(app, flag.NewFlagSet("render", flag.ContinueOnError), parent)

			setupLogging(ctx, tt.base)
			if log.CurrentLevel() != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, log.CurrentLevel())
			}
		})
	}
}
