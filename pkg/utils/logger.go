package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger - human readable zerolog output on stderr, info level until options are parsed
func InitLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822})
}

// SetLogLevel - switches the global level (trace, debug, info, warn, error)
// An unknown name leaves the current level untouched.
func SetLogLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return fmt.Errorf("unknown log level %q", name)
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("Log level applied")

	return nil
}
