package config

import (
	"os"
)

type Config struct {
	// Format is the report codec name (text, json, cbor, msgpack).
	Format string

	// Log selects the trace backend (none, zap, logrus, slog).
	Log      string
	LogLevel string
}

func Load() Config {
	return Config{
		Format:   envString("NEGABINARY_FORMAT", "text"),
		Log:      envString("NEGABINARY_LOG", "none"),
		LogLevel: envString("NEGABINARY_LOG_LEVEL", "debug"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
