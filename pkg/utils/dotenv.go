package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadDotEnvFile - merges ./.env into the process environment
// A missing file is not an error, exported variables win over the file.
func LoadDotEnvFile() {
	path, err := filepath.Abs(".env")
	if err != nil {
		log.Warn().Err(err).Msg("Unable to resolve .env location, skipping")
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Debug().Str("path", path).Msg("No .env file, environment variables only")
		return
	}

	log.Info().Str("path", path).Msg("Loaded .env file")
}
