package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returning defaultDuration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Str("duration", durationStr).Err(err).Msg("Invalid duration, using default")
		return defaultDuration
	}

	return duration
}
