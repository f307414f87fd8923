package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/utils"
	"github.com/MKhiriev/go-request-inbox/models"
)

const (
	defaultRequestTimeout = 15 * time.Second

	// maxErrorBody bounds how much of a failed stream response is read for
	// the error message.
	maxErrorBody = 4 << 10
)

type httpServerAdapter struct {
	// client serves CRUD calls and carries the request timeout.
	client *utils.HTTPClient
	// stream has no overall timeout: the body lives as long as the
	// subscription.
	stream *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and attaches cfg.Token to every request.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	token := strings.TrimSpace(cfg.Token)

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(token)

	stream := utils.NewHTTPClient()
	stream.
		SetBaseURL(baseURL).
		SetAuthToken(token)

	return &httpServerAdapter{client: client, stream: stream, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [ServerAdapter]. It GETs /api/requests with the status
// and q query parameters when set.
func (h *httpServerAdapter) List(ctx context.Context, filter models.ListFilter) ([]models.Request, error) {
	var requests []models.Request

	req := h.client.R().
		SetContext(ctx).
		SetResult(&requests)
	if filter.Status != "" {
		req.SetQueryParam("status", filter.Status.String())
	}
	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}

	resp, err := req.Get("/api/requests")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.Request{}
	}
	return requests, nil
}

// Get implements [ServerAdapter].
func (h *httpServerAdapter) Get(ctx context.Context, id string) (models.Request, error) {
	var request models.Request

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&request).
		Get("/api/requests/{id}")
	if err != nil {
		return models.Request{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	return request, nil
}

// Create implements [ServerAdapter]. It POSTs payload to /api/requests.
func (h *httpServerAdapter) Create(ctx context.Context, payload models.RequestPayload) (models.Request, error) {
	var created models.Request

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/api/requests")
	if err != nil {
		return models.Request{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	return created, nil
}

// UpdateStatus implements [ServerAdapter]. It PATCHes
// /api/requests/{id}/status.
func (h *httpServerAdapter) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error) {
	var updated models.Request

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.StatusUpdateRequest{Status: status}).
		SetResult(&updated).
		Patch("/api/requests/{id}/status")
	if err != nil {
		return models.Request{}, fmt.Errorf("update status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	return updated, nil
}

// Convert implements [ServerAdapter]. It POSTs /api/requests/{id}/convert.
func (h *httpServerAdapter) Convert(ctx context.Context, id string) (models.Request, error) {
	var converted models.Request

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&converted).
		Post("/api/requests/{id}/convert")
	if err != nil {
		return models.Request{}, fmt.Errorf("convert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	return converted, nil
}

// Delete implements [ServerAdapter]. It DELETEs /api/requests/{id} and
// returns the id confirmed by the server.
func (h *httpServerAdapter) Delete(ctx context.Context, id string) (string, error) {
	var deleted models.DeleteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&deleted).
		Delete("/api/requests/{id}")
	if err != nil {
		return "", fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if deleted.RequestID == "" {
		deleted.RequestID = id
	}
	return deleted.RequestID, nil
}

// OpenStream implements [ServerAdapter]. The response body is handed to
// the caller unparsed; on a non-2xx status or a foreign content type it is
// closed here and an error is returned instead.
func (h *httpServerAdapter) OpenStream(ctx context.Context) (io.ReadCloser, error) {
	resp, err := h.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		Get("/api/requests/stream")
	if err != nil {
		return nil, fmt.Errorf("open stream request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		defer body.Close()
		msg, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		if err = mapStatus(resp.StatusCode(), string(msg)); err == nil {
			err = fmt.Errorf("http %d: unexpected stream status", resp.StatusCode())
		}
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if mediaType != "text/event-stream" {
		body.Close()
		return nil, fmt.Errorf("%w: %q", ErrNotAnEventStream, mediaType)
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.OpenStream").Msg("stream opened")
	return body, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
