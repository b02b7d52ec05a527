package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vrischmann/envconfig"
)

// envPrefix namespaces every variable, e.g. CAMPUSMAP_GRAPH_FILE.
const envPrefix = "CAMPUSMAP"

// Config is read from the environment.
type Config struct {
	GraphFile    string        `envconfig:"default=campus.dot"`
	ListenAddr   string        `envconfig:"default=:8080"`
	LogLevel     string        `envconfig:"default=info"`
	ReadTimeout  time.Duration `envconfig:"default=5s"`
	WriteTimeout time.Duration `envconfig:"default=10s"`
}

func loadConfig() (Config, error) {
	var conf Config
	if err := envconfig.InitWithPrefix(&conf, envPrefix); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return conf, nil
}

// newLogger builds a text logger at the configured level ("debug", "info", "warn", "error").
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
