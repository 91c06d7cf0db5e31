package mms

import "github.com/rs/zerolog"

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
