package logger

import (
	"os"

	"github.com/goto/salt/log"

	"github.com/goto/chrono/config"
)

// NewClientLogger builds the logger used by CLI commands.
func NewClientLogger() log.Logger {
	return NewLogger(config.LogLevelInfo)
}

func NewLogger(level config.LogLevel) log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(level.String()),
		log.LogrusWithWriter(os.Stdout),
	)
}
