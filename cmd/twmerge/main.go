package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/twmerge/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to create twmerge runner got %v", err)
	}
	if err := r.Run(ctx); err != nil {
		_ = r.Close()
		gologger.Fatal().Msgf("failed to merge classes got %v", err)
	}
	if err := r.Close(); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}
