package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel installs a text handler on stderr as the default logger
// at the named level.
func SetLogLevel(name string) error {
	var level slog.Level

	switch strings.ToUpper(name) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q", name)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}
