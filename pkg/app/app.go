package app

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/client"
	"gitlab.com/adam.stanek/growthwalk/pkg/mqtt"
	"gitlab.com/adam.stanek/growthwalk/pkg/walkthrough"
)

// App - application container
type App struct {
	Opts       Opts
	RestClient *client.BabyCareClient
	Scenario   walkthrough.Scenario
	Out        io.Writer
}

// NewApp - constructor, transcript of the walkthrough is written to out
func NewApp(opts Opts, out io.Writer) *App {
	return &App{
		Opts:       opts,
		RestClient: client.NewBabyCareClient(opts.BaseURL, opts.HTTPTimeout),
		Scenario:   newScenario(opts),
		Out:        out,
	}
}

func newScenario(opts Opts) walkthrough.Scenario {
	scenario := walkthrough.DefaultScenario()
	scenario.Account.Username = opts.Credentials.Username
	scenario.Account.Password = opts.Credentials.Password
	scenario.Account.Email = opts.Credentials.Email
	scenario.Account.Nickname = opts.Credentials.Nickname

	if opts.UniqueUsername {
		scenario.Account.Username += "_" + uuid.NewString()[:8]
	}

	return scenario
}

// Run - runs the walkthrough and publishes its outcome if MQTT is configured
func (app *App) Run(ctx context.Context) *walkthrough.Report {
	log.Info().Str("base_url", app.RestClient.BaseURL).Str("username", app.Scenario.Account.Username).Msg("Starting walkthrough")

	report := walkthrough.New(app.RestClient, app.Out, app.Scenario).Run(ctx)

	if failure, ok := report.FirstFailure(); ok {
		log.Warn().Str("step", string(failure.Step)).Str("kind", string(failure.Kind)).Err(failure.Err).Msg("Walkthrough halted")
	} else {
		log.Info().Bool("completed", report.Completed()).Msg("Walkthrough finished")
	}

	if mqttOpts := app.Opts.MQTT(); mqttOpts != nil {
		if err := mqtt.PublishReport(*mqttOpts, report); err != nil {
			log.Error().Err(err).Msg("Unable to publish walkthrough outcome")
		}
	}

	return report
}
