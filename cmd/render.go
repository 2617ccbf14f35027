package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx, log.Notice)

	opts, err := resolveOptions(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	// Validate has already accepted the name
	level, _ := log.ParseLevel(opts.LogLevel)
	setupLogging(ctx, level)

	stats, err := renderFrame(opts)
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
	return nil
}

// resolveOptions layers the optional config file and the command flags on
// top of the defaults
func resolveOptions(ctx *cli.Context) (config.Options, error) {
	opts := config.Default()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}

	flags := config.Flags{
		Scene:           ctx.String("scene"),
		TextureDir:      ctx.String("textures"),
		Output:          ctx.String("out"),
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Seed:            ctx.Int64("seed"),
	}
	if ctx.IsSet("light-samples") {
		n := ctx.Int("light-samples")
		flags.LightSamples = &n
	}
	if ctx.IsSet("max-depth") {
		n := ctx.Int("max-depth")
		flags.MaxDepth = &n
	}
	opts.Resolve(flags)

	return opts, opts.Validate()
}

// renderFrame builds the scene, renders it and writes the output image
func renderFrame(opts config.Options) (renderer.RenderStats, error) {
	def, err := scene.Builtin(opts.Scene)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	logger.Infof(`building scene "%s"`, def.Name)
	sc := def.Build(scene.Options{TextureDir: opts.TextureDir, Logger: logger})

	r := renderer.NewRenderer(opts.Width, opts.Height, core.NewSeededSampler(opts.Seed))
	r.SetLogger(logger)
	r.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: opts.SamplesPerPixel,
		LightSamples:    opts.LightSamples,
		MaxDepth:        opts.MaxDepth,
	})

	logger.Noticef("rendering %dx%d at %d spp", opts.Width, opts.Height, opts.SamplesPerPixel)
	frame, stats := r.Render(sc, sc.Camera)

	if err := loaders.SaveImage(opts.Output, frame.Image()); err != nil {
		return stats, err
	}
	logger.Noticef("wrote %s", opts.Output)

	return stats, nil
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", stats.SamplesPerPixel)})
	table.Append([]string{"Light samples", fmt.Sprintf("%d", stats.LightSamples)})
	table.Append([]string{"Camera rays", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Average bounces", fmt.Sprintf("%.2f", stats.Integrator.AverageBounces())})
	table.Append([]string{"Shadow rays", fmt.Sprintf("%d", stats.Integrator.ShadowRays)})
	table.Append([]string{"Occluded shadow rays", fmt.Sprintf("%d", stats.Integrator.OccludedShadowRays)})
	table.Append([]string{"Environment hits", fmt.Sprintf("%d", stats.Integrator.EnvironmentHits)})
	table.Append([]string{"Roulette terminations", fmt.Sprintf("%d", stats.Integrator.RouletteTerminations)})
	table.Append([]string{"Log-average luminance", fmt.Sprintf("%.4f", stats.LogAverageLuminance)})
	table.Append([]string{"Average luminance", fmt.Sprintf("%.4f", stats.AverageLuminance)})
	table.SetFooter([]string{"TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
