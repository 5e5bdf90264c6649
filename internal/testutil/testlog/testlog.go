package testlog

import (
	"testing"

	"github.com/mrj0/vinyl/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.L().Info().Str("test", t.Name()).Msg("start")
}
