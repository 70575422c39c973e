package main

import (
	"context"
	"os"
	"os/signal"

	"wardline/cmd/wardline/serve"
	"wardline/cmd/wardline/staff"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wardline",
		Usage: "Role-based clinical records backend",
		Commands: []*cli.Command{
			serve.Cmd(),
			staff.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
