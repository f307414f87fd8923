// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/logger"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal inbox view. It renders snapshots of the inbox and
// turns key presses into inbox service calls.
type TUI struct {
	services  *service.ClientServices
	inbox     *inbox.Inbox
	states    *StateFeed
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, ib *inbox.Inbox, states *StateFeed, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		inbox:     ib,
		states:    states,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the inbox until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newInboxModel(ctx, t.services.InboxService, t.inbox, t.states.C(), t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}
	return nil
}
