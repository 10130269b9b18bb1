package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/smp46/slaythecli/internal/config"
	"github.com/smp46/slaythecli/internal/serverapp"
)

func main() {
	env, err := config.FromEnv()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("parse environment")
	}

	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	cfg := config.Default()
	if env.ConfigPath != "" {
		cfg, err = config.Load(env.ConfigPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", env.ConfigPath).Msg("load config")
		}
	}

	handler, _, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: logger,
		Seed:   env.Seed,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build server")
	}

	logger.Info().Str("addr", env.Addr).Msg("listening")
	if err := http.ListenAndServe(env.Addr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
