package cmd

import (
	"bytes"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx, log.Notice)
	logger.Noticef("available scenes\n%s", formatSceneList(scene.Definitions()))
	return nil
}

func formatSceneList(defs []scene.Definition) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, def := range defs {
		table.Append([]string{def.Name, def.Description})
	}

	table.Render()
	return buf.String()
}
