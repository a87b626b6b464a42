package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/df07/go-sphere-caster/pkg/output"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame and write it to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 0 {
		return errors.New("unexpected arguments; select a scene with --scene")
	}

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

	buf, stats, err := r.Render(sigCtx, world)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := output.WriteFile(out, buf, ctx.Int("scale")); err != nil {
		return err
	}

	displayFrameStats(world, stats)
	logger.Noticef("wrote frame to %s", out)
	return nil
}

func displayFrameStats(world *scene.World, stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Color", "Pixels", "% of frame"})

	percent := func(n int) string {
		if stats.TotalPixels == 0 {
			return "0.0 %"
		}
		return fmt.Sprintf("%02.1f %%", 100*float64(n)/float64(stats.TotalPixels))
	}

	for i, sphere := range world.Spheres {
		table.Append([]string{
			fmt.Sprintf("sphere %d", i),
			sphere.Color.Hex(),
			fmt.Sprintf("%d", stats.SphereHits[i]),
			percent(stats.SphereHits[i]),
		})
	}
	table.Append([]string{
		"background",
		world.Background.Hex(),
		fmt.Sprintf("%d", stats.BackgroundPixels),
		percent(stats.BackgroundPixels),
	})
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d tiles / %d workers", stats.Tiles, stats.Workers),
		"TOTAL",
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
