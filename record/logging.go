package record

import (
	"github.com/rs/zerolog"

	"github.com/mrj0/vinyl/internal/logging"
)

// SetLogger replaces the logger used by vinyl. By default vinyl logs errors
// to stderr; VINYL_LOG_LEVEL adjusts the level.
func SetLogger(l zerolog.Logger) {
	logging.Set(l)
}
