package cmd

import (
	"fmt"

	"github.com/df07/go-sphere-caster/pkg/display"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/urfave/cli"
)

// Show the scene in a resizable window.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	world, err := loadWorld(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(opts, nil)
	if err != nil {
		return err
	}

	sigCtx, stop := signalContext()
	defer stop()

	title := fmt.Sprintf("%s - %s", ctx.App.Name, ctx.String("scene"))
	return display.NewWindow(title, world, r, nil).Run(sigCtx)
}
