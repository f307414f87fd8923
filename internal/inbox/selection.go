// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import "github.com/MKhiriev/go-request-inbox/models"

// Selection points at the request shown in the detail pane. The zero value
// selects nothing.
type Selection struct {
	request models.Request
	ok      bool
}

// Select returns a selection of the request with id in c. Selecting an id
// that is not in c yields the empty selection.
func Select(c Collection, id string) Selection {
	r, ok := c.Get(id)
	return Selection{request: r, ok: ok}
}

// Request returns the selected request and whether anything is selected.
func (s Selection) Request() (models.Request, bool) {
	return s.request, s.ok
}

// ID returns the selected id, or "" when nothing is selected.
func (s Selection) ID() string {
	if !s.ok {
		return ""
	}
	return s.request.ID
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return !s.ok
}

// Follow re-points s at the current value of its request in c. The
// selection is cleared when the request is no longer in c.
func (s Selection) Follow(c Collection) Selection {
	if !s.ok {
		return s
	}
	return Select(c, s.request.ID)
}
