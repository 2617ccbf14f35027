package cmd

import (
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtrace")

// setupLogging applies the global -v/-vv flags on top of base
func setupLogging(ctx *cli.Context, base log.Level) {
	log.SetLevel(log.Verbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv"), base))
}
