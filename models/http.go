// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusUpdateRequest is the body of PATCH /api/requests/{id}/status.
type StatusUpdateRequest struct {
	Status RequestStatus `json:"status"`
}

// DeleteResponse is the tombstone returned by DELETE /api/requests/{id}.
type DeleteResponse struct {
	RequestID string `json:"requestId"`
}

// ListFilter narrows GET /api/requests. Zero values mean "no filter".
type ListFilter struct {
	// Status keeps only requests in this status when non-empty.
	Status RequestStatus `json:"status,omitempty"`

	// Query is matched case-insensitively against name, phone, email and
	// address.
	Query string `json:"q,omitempty"`
}
