package caredis

import (
	"log/slog"

	"github.com/rmorlok/credagent/test_utils"
)

func testLogger() *slog.Logger {
	return test_utils.NewTestLogger()
}
