// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-request-inbox/internal/adapter"
	"github.com/MKhiriev/go-request-inbox/internal/config"
	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/stream"
	"github.com/MKhiriev/go-request-inbox/internal/tui"
	"github.com/MKhiriev/go-request-inbox/internal/workers"
	"github.com/MKhiriev/go-request-inbox/models"
)

// View is the foreground part of the client. It blocks until the user
// leaves.
type View interface {
	Run(ctx context.Context) error
}

// App owns one mounted inbox: the reconciler, the stream supervisor that
// feeds it and the view that renders it.
type App struct {
	inbox      *inbox.Inbox
	supervisor *stream.Supervisor
	view       View
	logger     *logger.Logger
}

// NewApp wires the client from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ib := inbox.New(cfg.Workers.QueueSize, logger)
	services := service.NewClientServices(serverAdapter, ib, logger)

	feed := tui.NewStateFeed()
	streamClient := stream.NewClient(serverAdapter, ib, logger, stream.WithMaxEventSize(cfg.Workers.MaxEventSize))
	supervisor := stream.NewSupervisor(streamClient, cfg.Workers.RetryDelay, feed.Observe, logger)

	ui := tui.New(services, ib, feed, buildInfo, logger)

	return newApp(ib, supervisor, ui, logger), nil
}

func newApp(ib *inbox.Inbox, supervisor *stream.Supervisor, view View, logger *logger.Logger) *App {
	return &App{
		inbox:      ib,
		supervisor: supervisor,
		view:       view,
		logger:     logger,
	}
}

// Run starts the inbox and the stream in the background, shows the view
// and tears everything down once the view returns. The inbox is closed
// before the stream stops, so a frame still in flight is rejected rather
// than applied.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	background := workers.New(a.inbox, a.supervisor)
	bgErr := make(chan error, 1)
	go func() {
		bgErr <- background.Run(ctx)
	}()

	viewErr := a.view.Run(ctx)

	a.inbox.Close()
	a.supervisor.Stop()
	cancel()

	if err := <-bgErr; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, stream.ErrSupervisorStopped) {
		a.logger.Err(err).Msg("background workers stopped with error")
		if viewErr == nil {
			return err
		}
	}

	return viewErr
}
