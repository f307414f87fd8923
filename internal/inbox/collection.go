// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import "github.com/MKhiriev/go-request-inbox/models"

// Collection is the ordered, locally held mirror of the server's requests.
// It never holds two entries with the same id. A Collection value is never
// modified after it has been returned by [Apply]; treat it as read-only.
type Collection []models.Request

// IndexOf returns the position of the request with id, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the request with id.
func (c Collection) Get(id string) (models.Request, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c[i], true
	}
	return models.Request{}, false
}

// IDs returns the ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ids
}
