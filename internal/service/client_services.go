package service

import (
	"github.com/MKhiriev/go-request-inbox/internal/adapter"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
)

type ClientServices struct {
	InboxService ClientInboxService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, merger FrameMerger, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		InboxService: NewClientInboxService(serverAdapter, merger, logger),
	}
}
