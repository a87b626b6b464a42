package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
	"github.com/urfave/cli"
)

// Flags selecting the scene to render.
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "scene, s",
		Value:  "default",
		Usage:  "built-in scene to render (see the scenes command)",
		EnvVar: "CASTER_SCENE",
	},
	cli.StringFlag{
		Name:   "background",
		Usage:  "override the scene background color (#rrggbb or #rrggbbaa)",
		EnvVar: "CASTER_BACKGROUND",
	},
}

// Flags configuring frame size and parallelism.
var FrameFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "width",
		Value:  renderer.DefaultOptions().Width,
		Usage:  "frame width",
		EnvVar: "CASTER_WIDTH",
	},
	cli.IntFlag{
		Name:   "height",
		Value:  renderer.DefaultOptions().Height,
		Usage:  "frame height",
		EnvVar: "CASTER_HEIGHT",
	},
	cli.IntFlag{
		Name:   "workers",
		Value:  0,
		Usage:  "number of rendering goroutines (0 = one per CPU)",
		EnvVar: "CASTER_WORKERS",
	},
	cli.IntFlag{
		Name:   "tile-size",
		Value:  renderer.DefaultOptions().TileSize,
		Usage:  "edge length of the square tiles a frame is split into",
		EnvVar: "CASTER_TILE_SIZE",
	},
}

// renderOptions builds renderer options from the command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.Options{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		Workers:  ctx.Int("workers"),
		TileSize: ctx.Int("tile-size"),
	}
	return opts, opts.Validate()
}

// loadWorld resolves the selected scene and applies the background override.
func loadWorld(ctx *cli.Context) (*scene.World, error) {
	world, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	if bg := ctx.String("background"); bg != "" {
		color, err := core.ParseHexColor(bg)
		if err != nil {
			return nil, err
		}
		world.Background = color
	}

	logger.Infof("loaded scene %q with %d spheres", ctx.String("scene"), len(world.Spheres))
	return world, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
