// Package logging configures structured logging and the HTTP request log for
// the Viventa front end.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger for the given environment. The
// development environment logs human-readable text at debug level; anything
// else logs JSON at info level.
func Setup(env string) {
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler).With("service", "viventa"))
}
