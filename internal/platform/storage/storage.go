package storage

import (
	"os"

	"inkpost/internal/platform/config"

	"github.com/rs/zerolog/log"
)

// Init makes sure the on-disk layout exists before the server starts taking
// requests: the data directory and the blogs root. The users file is created
// lazily on first registration.
func Init() {
	if err := os.MkdirAll(config.AppConfig.BlogsDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", config.AppConfig.BlogsDir).Msg("could not create blogs directory")
	}
}
