// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sats-ledger/internal/logger"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/models"
)

var errNoServices = errors.New("tui: client services are required")

// TUI runs the interactive terminal program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the program and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newAppModel(ctx, t.services, t.buildInfo),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// OnSessionChange is registered with the session. When the session locks
// while the program runs, the program returns to the unlock screen.
func (t *TUI) OnSessionChange(state session.State) {
	if state != session.Locked {
		return
	}

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	t.logger.Debug().Msg("session locked, returning to unlock screen")
	// Send blocks until the program reads the message; session listeners
	// must not block.
	go program.Send(sessionLockedMsg{})
}
