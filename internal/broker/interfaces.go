// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import "github.com/MKhiriev/go-request-inbox/models"

// Broker is a per-tenant publish/subscribe hub for [models.Frame] values.
type Broker interface {
	// Subscribe registers a new subscriber for tenantID.
	Subscribe(tenantID string) (*Subscription, error)
	// Publish delivers frame to every live subscriber of tenantID.
	Publish(tenantID string, frame models.Frame)
	// Unsubscribe ends sub and forgets it. Safe to call more than once.
	Unsubscribe(sub *Subscription)
	// Close ends every subscription and rejects new ones.
	Close()
	Stats() Stats
}
