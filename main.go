package main

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-caster/cmd"
	"github.com/urfave/cli"
)

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sphere-caster"
	app.Usage = "render scenes of flat-colored spheres by ray casting"
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
			Usage: "render a single frame to an image file",
			Description: `
Cast one ray per pixel from the scene origin, color each pixel with the
nearest sphere it hits (or the background) and write the frame to disk.

The image format is picked from the output file extension: .png, .bmp,
.tif or .tiff.`,
			Flags: flags(cmd.SceneFlags, cmd.FrameFlags, []cli.Flag{
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "CASTER_OUT",
				},
				cli.IntFlag{
					Name:   "scale",
					Value:  1,
					Usage:  "integer upscale factor applied before writing",
					EnvVar: "CASTER_SCALE",
				},
			}),
			Action: cmd.RenderFrame,
		},
		{
			Name:        "window",
			Usage:       "show the scene in a window",
			Description: `Render the scene into a resizable window. The frame is re-rendered whenever the window size changes; press Escape to quit.`,
			Flags:       flags(cmd.SceneFlags, cmd.FrameFlags),
			Action:      cmd.RenderInteractive,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve rendered frames over HTTP",
			Flags: flags(cmd.FrameFlags, []cli.Flag{
				cli.StringFlag{
					Name:   "addr",
					Value:  "localhost:8080",
					Usage:  "listen address",
					EnvVar: "CASTER_ADDR",
				},
			}),
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
