package cmd

import (
	"github.com/df07/go-sphere-caster/web/server"
	"github.com/urfave/cli"
)

// Serve rendered frames over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sigCtx, stop := signalContext()
	defer stop()

	return server.NewServer(ctx.String("addr"), opts, nil).Start(sigCtx)
}
