// Package logger holds the process-wide logger for the SDK. Libraries
// should be quiet by default, so the level starts at warn and can be
// lowered through the GITHUBAPI_LOG environment variable.
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the singleton logger instance, initializing it on first call.
func Get() *zerolog.Logger {
	once.Do(func() {
		level := zerolog.WarnLevel
		if levelStr := os.Getenv("GITHUBAPI_LOG"); levelStr != "" {
			if parsed, err := zerolog.ParseLevel(strings.ToLower(levelStr)); err == nil {
				level = parsed
			}
		}
		log = zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Str("component", "githubapi").
			Logger()
	})
	return &log
}
