// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-request-inbox/internal/logger"

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	RequestRepository RequestRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		RequestRepository: NewRequestRepository(db, log),
	}
}
