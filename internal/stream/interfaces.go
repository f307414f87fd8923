// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"io"

	"github.com/MKhiriev/go-request-inbox/models"
)

// Dialer opens the raw text/event-stream body of the request stream.
// It returns once the server has accepted the subscription.
type Dialer interface {
	OpenStream(ctx context.Context) (io.ReadCloser, error)
}

// FrameSink receives decoded frames in arrival order.
type FrameSink interface {
	Deliver(ctx context.Context, frame models.Frame) error
}

// Opener starts one subscription. [*Client] implements it.
type Opener interface {
	Open(ctx context.Context) (*Handle, error)
}

// Observer is told about every connection state change.
type Observer func(State)
