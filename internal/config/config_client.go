package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the users API address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogLevel is the minimal zerolog level emitted by the client.
	LogLevel string
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Args are the positional arguments left after flag parsing
	// (the client command and its own arguments).
	Args []string
}

// GetClientConfig builds and validates a client-specific config view.
//
// It loads env, flags and the optional JSON file the same way as
// [GetStructuredConfig], but skips the server validation rules, maps only
// the fields relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Args: builder.rest,
	}

	return clientCfg, clientCfg.validate()
}
