package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// UserLevel is the minimum level printed by the default logger.
var UserLevel = new(slog.LevelVar)

// SetupLogging installs a text logger on stderr at the named level ("debug", "info", "warn", "error").
func SetupLogging(level string) error {
	return SetupLoggingTo(os.Stderr, level)
}

func SetupLoggingTo(w io.Writer, level string) error {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
	}
	UserLevel.Set(lvl)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
	return nil
}
