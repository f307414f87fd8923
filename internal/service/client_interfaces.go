package service

import (
	"context"

	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// FrameMerger is the inbox entry point shared by stream frames and local
// mutation results. [*inbox.Inbox] implements it.
type FrameMerger interface {
	Merge(ctx context.Context, f models.Frame, origin inbox.Origin) error
}

// ClientInboxService performs the mutating actions of the inbox view.
//
// Every method calls the server first and only on success merges the
// canonical result into the inbox: nothing is applied optimistically, so a
// failure leaves the collection untouched. The stream frame for the same
// change arrives later and merges as a no-op. Returned errors are service
// errors; [UserMessage] turns them into dialog text.
type ClientInboxService interface {
	// Create submits a new request and merges it as an insert.
	Create(ctx context.Context, payload models.RequestPayload) (models.Request, error)

	// UpdateStatus asks the server for a status change and merges the
	// canonical request as an update.
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error)

	// Convert converts the request into a client and a budget and merges the
	// result as an update.
	Convert(ctx context.Context, id string) (models.Request, error)

	// Delete removes the request and merges a delete for it.
	Delete(ctx context.Context, id string) error

	// ServerVersion returns the server build version.
	ServerVersion(ctx context.Context) (string, error)
}
