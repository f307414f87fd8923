// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/stream"
	"github.com/MKhiriev/go-request-inbox/models"
)

// streamRequests serves GET /api/requests/stream.
//
// The subscription is taken before the snapshot is read, so a mutation
// committed in between shows up both in the snapshot and as a live frame;
// clients merge idempotently, so the duplicate is harmless, while the
// opposite order could lose it. Every connection starts with a refresh
// frame. The stream ends when the client goes away, the server shuts down
// or the subscriber falls too far behind; in the last case the client
// reconnects and resynchronizes from a new refresh.
func (h *Handler) streamRequests(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	tenantID, err := tenantFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.streamRequests", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeError(w, r, "*Handler.streamRequests", ErrStreamingUnsupported)
		return
	}

	sub, err := h.services.RequestService.Subscribe(ctx, tenantID)
	if err != nil {
		h.writeError(w, r, "*Handler.streamRequests", err)
		return
	}
	defer h.services.RequestService.Unsubscribe(sub)

	snapshot, err := h.services.RequestService.List(ctx, tenantID, models.ListFilter{})
	if err != nil {
		h.writeError(w, r, "*Handler.streamRequests", err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err = stream.WriteFrame(w, models.RefreshFrame{Requests: snapshot}); err != nil {
		log.Err(err).Str("func", "*Handler.streamRequests").Msg("error writing refresh frame")
		return
	}
	flusher.Flush()

	log.Info().Str("func", "*Handler.streamRequests").
		Str("tenant_id", tenantID).
		Int("snapshot_size", len(snapshot)).
		Msg("stream opened")

	keepAlive := time.NewTicker(h.streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", "*Handler.streamRequests").Msg("client disconnected")
			return

		case <-sub.Done():
			log.Info().Str("func", "*Handler.streamRequests").
				Bool("overflowed", sub.Overflowed()).
				Msg("subscription ended")
			return

		case frame := <-sub.Frames():
			if err = stream.WriteFrame(w, frame); err != nil {
				log.Err(err).Str("func", "*Handler.streamRequests").Msg("error writing frame")
				return
			}
			flusher.Flush()

		case <-keepAlive.C:
			if err = stream.WriteComment(w, "ping"); err != nil {
				log.Err(err).Str("func", "*Handler.streamRequests").Msg("error writing keepalive")
				return
			}
			flusher.Flush()
		}
	}
}
