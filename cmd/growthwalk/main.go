package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/tevino/abool"
	"gitlab.com/adam.stanek/growthwalk/pkg/app"
	"gitlab.com/adam.stanek/growthwalk/pkg/utils"
)

// Injected on CI (from CI_COMMIT_SHORT_SHA)
var GitCommit string

func main() {
	utils.InitLogger()
	logAppVersion()
	utils.LoadDotEnvFile()

	opts, err := app.ParseOpts()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration, falling back to defaults")
		opts = app.DefaultOpts()
	}

	if err := utils.SetLogLevel(opts.LogLevel); err != nil {
		log.Error().Err(err).Msg("Keeping info log level")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	interrupted := abool.New()
	go func() {
		select {
		case <-interrupt:
			log.Warn().Msg("Received interrupt signal, cancelling current request")
			interrupted.Set()
			cancel()
		case <-ctx.Done():
		}
	}()

	instance := app.NewApp(opts, os.Stdout)
	instance.Run(ctx)

	// Failures are reported on the console only, the exit code stays 0
	if interrupted.IsSet() {
		log.Warn().Msg("Walkthrough interrupted")
	}
}

func logAppVersion() {
	initMsg := log.Info()
	if GitCommit != "" {
		initMsg.Str("gitversion", GitCommit)
	}

	initMsg.Msg("Application started")
}
