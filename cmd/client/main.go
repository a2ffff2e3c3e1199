package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/client"
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
)

func main() {
	log := logger.NewClientLogger("user-client")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	api, err := adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating users API adapter")
	}

	app := client.NewApp(api, os.Stdout, log)
	if err = app.Run(context.Background(), cfg.Args); err != nil {
		if errors.Is(err, client.ErrMissingCommand) || errors.Is(err, client.ErrUnknownCommand) {
			client.Usage(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
