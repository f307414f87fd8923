// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import (
	"strings"

	"github.com/MKhiriev/go-request-inbox/models"
)

// Filter is the local, view-only narrowing of the inbox list.
type Filter struct {
	// Status keeps only requests in this status. Nil keeps every status.
	Status *models.RequestStatus

	// Query is matched case-insensitively as a substring of the name,
	// phone, email or address. Surrounding whitespace is ignored.
	Query string
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r models.Request) bool {
	if f.Status != nil && r.Status != *f.Status {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	for _, field := range []string{r.Payload.Name, r.Payload.Phone, r.Payload.Email, r.Payload.Address} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// View returns the requests of c that match f, in collection order.
// The result is freshly allocated and may be modified by the caller.
func View(c Collection, f Filter) []models.Request {
	out := make([]models.Request, 0, len(c))
	for _, r := range c {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
