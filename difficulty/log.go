package difficulty

import "github.com/rs/zerolog"

// log is initialized with no output filters; the package stays silent
// until a host process calls UseLogger.
var log zerolog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output from this package.
func DisableLog() {
	log = zerolog.Nop()
}

// UseLogger directs this package's logging to logger.
func UseLogger(logger zerolog.Logger) {
	log = logger
}
