// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for both the
// request server and the inbox client. It is populated by merging values
// from environment variables, command-line flags, an optional config file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and stream settings of the
	// request server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds how the inbox client reaches the request server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the client background loops.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// IssueToken, when set, asks the server binary to print a bearer token
	// for this tenant id and exit. Flag only.
	IssueToken string
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify tenant JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in, and required from, every
	// tenant token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and stream settings of the request server.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health service. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every non-stream request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StreamKeepAlive is the interval of ": ping" comments on idle streams.
	// Env: SERVER_STREAM_KEEPALIVE
	StreamKeepAlive time.Duration `env:"STREAM_KEEPALIVE"`

	// StreamBuffer is the number of frames buffered per stream subscriber
	// before it is dropped and forced to resynchronize.
	// Env: SERVER_STREAM_BUFFER
	StreamBuffer int `env:"STREAM_BUFFER"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a PostgreSQL URL ("postgres://...") or a SQLite file path
	// ("sqlite://inbox.db" or "file:inbox.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds how the inbox client reaches the request server.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the request server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every CRUD call. The stream has no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the tenant bearer token sent with every call.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for client background loops.
type Workers struct {
	Stream StreamWorker `envPrefix:"STREAM_"`
}

// StreamWorker configures the stream supervisor and the inbox queue.
type StreamWorker struct {
	// RetryDelay is the fixed pause between failed connection attempts.
	// Env: WORKERS_STREAM_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// QueueSize is the capacity of the inbox message queue.
	// Env: WORKERS_STREAM_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// MaxEventSize is the largest stream event, in bytes, the client
	// accepts. Larger events are skipped.
	// Env: WORKERS_STREAM_MAX_EVENT_SIZE
	MaxEventSize int `env:"MAX_EVENT_SIZE"`
}

// defaults returns the values used for every field no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "request-inbox",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			StreamKeepAlive: 15 * time.Second,
			StreamBuffer:    32,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			Stream: StreamWorker{
				RetryDelay:   3 * time.Second,
				QueueSize:    64,
				MaxEventSize: 64 << 20,
			},
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}

// GetServerConfig loads the configuration and checks that everything the
// request server needs is present.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
