package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"gitlab.com/adam.stanek/growthwalk/pkg/mqtt"
)

// Opts - application run options
type Opts struct {
	BaseURL        string        `env:"GROWTHWALK_BASE_URL"        envDefault:"http://localhost:8080/api"`
	UniqueUsername bool          `env:"GROWTHWALK_UNIQUE_USERNAME" envDefault:"false"`
	HTTPTimeout    time.Duration `env:"GROWTHWALK_HTTP_TIMEOUT"    envDefault:"0s"`
	LogLevel       string        `env:"GROWTHWALK_LOG_LEVEL"       envDefault:"info"`
	MQTTEnabled    bool          `env:"GROWTHWALK_MQTT_ENABLED"    envDefault:"false"`
	Credentials    Credentials
	MQTTSettings   MQTTSettings
}

// Credentials - account registered and used for login
type Credentials struct {
	Username string `env:"GROWTHWALK_USERNAME" envDefault:"newuser789"`
	Password string `env:"GROWTHWALK_PASSWORD" envDefault:"test123456"`
	Email    string `env:"GROWTHWALK_EMAIL"    envDefault:"test@example.com"`
	Nickname string `env:"GROWTHWALK_NICKNAME" envDefault:"Test User"`
}

// MQTTSettings - broker used to publish walkthrough outcome
type MQTTSettings struct {
	BrokerURL   string `env:"GROWTHWALK_MQTT_BROKER_URL"`
	ClientID    string `env:"GROWTHWALK_MQTT_CLIENT_ID" envDefault:"growthwalk"`
	Username    string `env:"GROWTHWALK_MQTT_USERNAME"`
	Password    string `env:"GROWTHWALK_MQTT_PASSWORD"`
	TopicPrefix string `env:"GROWTHWALK_MQTT_PREFIX"    envDefault:"growthwalk"`
}

// ParseOpts - reads options from process environment variables
func ParseOpts() (Opts, error) {
	opts := Opts{}
	if err := env.Parse(&opts); err != nil {
		return Opts{}, fmt.Errorf("parse env: %w", err)
	}

	return opts, opts.validate()
}

// ParseOptsFrom - same as ParseOpts, but reads only the given variables
func ParseOptsFrom(environment map[string]string) (Opts, error) {
	if environment == nil {
		environment = map[string]string{}
	}

	opts := Opts{}
	if err := env.ParseWithOptions(&opts, env.Options{Environment: environment}); err != nil {
		return Opts{}, fmt.Errorf("parse env: %w", err)
	}

	return opts, opts.validate()
}

// DefaultOpts - options of a run with an empty environment
func DefaultOpts() Opts {
	opts, err := ParseOptsFrom(nil)
	if err != nil {
		panic(err)
	}

	return opts
}

func (opts Opts) validate() error {
	if opts.MQTTEnabled && opts.MQTTSettings.BrokerURL == "" {
		return errors.New("GROWTHWALK_MQTT_BROKER_URL is required when GROWTHWALK_MQTT_ENABLED=true")
	}

	if opts.HTTPTimeout < 0 {
		return errors.New("GROWTHWALK_HTTP_TIMEOUT must not be negative")
	}

	return nil
}

// MQTT - broker options, nil if publishing is disabled
func (opts Opts) MQTT() *mqtt.Opts {
	if !opts.MQTTEnabled {
		return nil
	}

	return &mqtt.Opts{
		BrokerURL:   opts.MQTTSettings.BrokerURL,
		ClientID:    opts.MQTTSettings.ClientID,
		Username:    opts.MQTTSettings.Username,
		Password:    opts.MQTTSettings.Password,
		TopicPrefix: opts.MQTTSettings.TopicPrefix,
	}
}
