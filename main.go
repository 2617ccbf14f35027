package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pathtrace"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one of the built-in scenes into a tone-mapped image.

Settings are read from the optional JSON config file first; any flag given on
the command line overrides the file. The output format is picked from the
file extension (.ppm, .png or .webp).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "JSON file with render settings",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "built-in scene name (see list-scenes)",
				},
				cli.StringFlag{
					Name:  "textures",
					Usage: "directory holding the room scene textures",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "light-samples",
					Usage: "samples per area light per path vertex, 0 disables area lights",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "bounce cap, 0 leaves termination to russian roulette",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed, 0 seeds from the clock",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}
