package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/fakeapi"
	"gitlab.com/adam.stanek/growthwalk/pkg/utils"
)

type config struct {
	Addr     string `env:"BABYCARE_FAKE_ADDR"      envDefault:":8080"`
	Secret   string `env:"BABYCARE_FAKE_SECRET"`
	LogLevel string `env:"BABYCARE_FAKE_LOG_LEVEL" envDefault:"debug"`
}

func main() {
	utils.InitLogger()
	utils.LoadDotEnvFile()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if cfg.Secret == "" {
		cfg.Secret = uuid.NewString()
		log.Info().Msg("No token secret configured, tokens are valid for this process only")
	}

	server := fakeapi.New([]byte(cfg.Secret))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	go func() {
		<-interrupt
		log.Warn().Msg("Received interrupt signal, terminating")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Unable to shut down cleanly")
		}
	}()

	if err := server.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}

	log.Info().Msg("Clean exit")
}
