// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.StreamBuffer < 0 || cfg.Workers.Stream.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateServer checks what the request server needs to start.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.StreamKeepAlive <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Token == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RetryDelay <= 0 || cfg.Workers.QueueSize <= 0 || cfg.Workers.MaxEventSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
