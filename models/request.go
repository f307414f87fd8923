// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestStatus is the server-authoritative lifecycle state of a budget
// request. Clients never compute a next status, they only ask for one.
type RequestStatus string

const (
	// StatusPending marks a freshly received request nobody has acted on yet.
	StatusPending RequestStatus = "pending"
	// StatusInContact marks a request whose author has been contacted.
	StatusInContact RequestStatus = "in_contact"
	// StatusConverted marks a request turned into a client and a budget.
	// LinkedClientID and LinkedBudgetID are populated only in this state.
	StatusConverted RequestStatus = "converted"
	// StatusDiscarded marks a request that will not be followed up.
	StatusDiscarded RequestStatus = "discarded"
)

// AllStatuses lists every known status in display order.
var AllStatuses = []RequestStatus{
	StatusPending,
	StatusInContact,
	StatusConverted,
	StatusDiscarded,
}

// IsValid reports whether s is one of the known statuses.
func (s RequestStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (s RequestStatus) String() string {
	return string(s)
}

// Request is a budget request submitted through the public site. It is the
// entity kept in sync between the server and every open inbox.
type Request struct {
	// ID is an opaque identifier, unique and immutable for the lifetime of
	// the request.
	ID string `json:"id"`

	// SequenceNumber is a per-tenant counter assigned by the server at
	// creation. Display only: clients never order by it.
	SequenceNumber int64 `json:"sequenceNumber"`

	// Status is the current lifecycle state.
	Status RequestStatus `json:"status"`

	// Payload holds the contact and service fields. The sync layer treats
	// it as opaque apart from the searchable fields.
	Payload RequestPayload `json:"payload"`

	// LinkedClientID references the client record created on conversion.
	LinkedClientID *string `json:"linkedClientId,omitempty"`

	// LinkedBudgetID references the budget created on conversion.
	LinkedBudgetID *string `json:"linkedBudgetId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RequestPayload carries the free-form fields typed by the requester.
type RequestPayload struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	City     string   `json:"city,omitempty"`
	Services []string `json:"services,omitempty"`
	SoilType string   `json:"soilType,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}
