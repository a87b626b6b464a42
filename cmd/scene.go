package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-caster/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Spheres", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.Name, fmt.Sprintf("%d", info.Spheres), info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
