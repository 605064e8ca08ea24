// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/models"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	now       func() time.Time
	copyText  func(string) error

	currentScreen screen

	unlock unlockModel
	list   listModel
	detail detailModel
	form   formModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.Transaction
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		now:           time.Now,
		copyText:      clipboard.WriteAll,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(),
		list:          newListModel(),
	}
	if services.VaultService.State() == session.Unlocked {
		m.currentScreen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case unlockDoneMsg:
		m.unlock.submitting = false
		if msg.err != nil {
			m.unlock.input.Reset()
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.unlock = newUnlockModel()
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case sessionLockedMsg:
		if m.currentScreen == screenUnlock {
			return m, nil
		}
		return m.toUnlock("Session locked"), textinput.Blink
	case listLoadedMsg:
		m.list.loading = false
		m.list.warning = ""
		var batchErr *service.BatchError
		switch {
		case errors.As(msg.err, &batchErr):
			m.list.warning = batchErr.Error()
		case msg.err != nil:
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.items = msg.items
		m.list.clampIndex()
		return m, nil
	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Saved"
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.pendingDelete = models.Transaction{}
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Deleted"
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.status = "Copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		switch {
		case m.unlock.submitting:
			m.unlock.spinner, cmd = m.unlock.spinner.Update(msg)
		case m.list.loading:
			m.list.spinner, cmd = m.list.spinner.Update(msg)
		}
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// toUnlock drops every decrypted record from the model and shows the
// unlock screen.
func (m appModel) toUnlock(status string) appModel {
	m.currentScreen = screenUnlock
	m.unlock = newUnlockModel()
	m.unlock.status = status
	m.list = newListModel()
	m.detail = detailModel{}
	m.form = formModel{}
	m.showConfirm = false
	m.pendingDelete = models.Transaction{}
	return m
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete.ID == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = models.Transaction{}
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.unlock.submitting {
			return m, nil
		}
		passphrase := m.unlock.input.Value()
		if passphrase == "" {
			m.showErrorf("Passphrase is required")
			return m, nil
		}
		m.unlock.submitting = true
		m.unlock.status = ""
		return m, tea.Batch(m.unlock.spinner.Tick, m.cmdUnlock(passphrase))
	}

	if m.unlock.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{item: item}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.lock):
		m.services.VaultService.Lock()
		return m.toUnlock(""), textinput.Blink
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newFormModel(&item)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = fmt.Sprintf("%s of %s", m.detail.item.Type, formatBTC(m.detail.item.Amount))
		m.pendingDelete = m.detail.item
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(m.detail.item.ID)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			tx, err := m.form.toTransaction(m.now())
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(tx, m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdUnlock(passphrase string) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	return func() tea.Msg {
		return unlockDoneMsg{err: vault.Unlock(ctx, passphrase)}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransactionService
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSave(tx models.Transaction, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransactionService
	return func() tea.Msg {
		var (
			saved models.Transaction
			err   error
		)
		if editing {
			saved, err = svc.Update(ctx, tx)
		} else {
			saved, err = svc.Create(ctx, tx)
		}
		return itemSavedMsg{item: saved, err: err}
	}
}

func (m appModel) cmdDelete(tx models.Transaction) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransactionService
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.Delete(ctx, tx.ID, tx.Version)}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
