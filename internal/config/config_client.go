package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the request server.
	HTTPAddress string
	// RequestTimeout is the default timeout for CRUD calls.
	RequestTimeout time.Duration
	// Token is the tenant bearer token.
	Token string
}

// ClientWorkers contains the stream supervisor and inbox queue settings.
type ClientWorkers struct {
	// RetryDelay is the fixed delay between reconnection attempts.
	RetryDelay time.Duration
	// QueueSize is the inbox queue capacity.
	QueueSize int
	// MaxEventSize is the largest accepted stream event in bytes.
	MaxEventSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address, timeout and token.
	Adapter ClientAdapter
	// Workers contains background loop settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Workers: ClientWorkers{
			RetryDelay:   cfg.Workers.Stream.RetryDelay,
			QueueSize:    cfg.Workers.Stream.QueueSize,
			MaxEventSize: cfg.Workers.Stream.MaxEventSize,
		},
	}
}
