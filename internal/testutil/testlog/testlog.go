// Package testlog bootstraps the test logging profile.
package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/nxtlink/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
