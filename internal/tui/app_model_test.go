// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sats-ledger/internal/crypto"
	"github.com/MKhiriev/sats-ledger/internal/mock"
	"github.com/MKhiriev/sats-ledger/internal/service"
	"github.com/MKhiriev/sats-ledger/internal/session"
	"github.com/MKhiriev/sats-ledger/internal/store"
	"github.com/MKhiriev/sats-ledger/models"
)

const testTxID = "0190f0e1-7c4a-7b3e-9a51-2f0c6d8e4b21"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testApp struct {
	model appModel
	vault *mock.MockClientVaultService
	txs   *mock.MockClientTransactionService
}

func newTestApp(t *testing.T, state session.State) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	vault := mock.NewMockClientVaultService(ctrl)
	vault.EXPECT().State().Return(state).AnyTimes()
	txs := mock.NewMockClientTransactionService(ctrl)

	services := &service.ClientServices{
		SaltService:        mock.NewMockClientSaltService(ctrl),
		VaultService:       vault,
		TransactionService: txs,
	}

	m := newAppModel(context.Background(), services, models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123"))
	m.now = func() time.Time { return testNow }

	return &testApp{model: m, vault: vault, txs: txs}
}

func sampleTx() models.Transaction {
	return models.Transaction{
		ID:        testTxID,
		Version:   3,
		Type:      models.Buy,
		Amount:    decimal.RequireFromString("0.5"),
		Price:     decimal.RequireFromString("62000"),
		Fee:       decimal.RequireFromString("1.5"),
		Wallet:    "cold",
		Timestamp: testNow,
	}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and flattens batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNewAppModel_StartScreen(t *testing.T) {
	assert.Equal(t, screenUnlock, newTestApp(t, session.Locked).model.currentScreen)
	assert.Equal(t, screenList, newTestApp(t, session.Unlocked).model.currentScreen)
}

func TestUnlock_Success(t *testing.T) {
	app := newTestApp(t, session.Locked)
	app.vault.EXPECT().Unlock(gomock.Any(), "correct horse").Return(nil)

	m := app.model
	m.unlock.input.SetValue("correct horse")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.unlock.submitting)

	done, ok := findMsg[unlockDoneMsg](runCmd(cmd))
	require.True(t, ok)

	m, cmd = update(t, m, done)
	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.unlock.submitting)
	assert.Empty(t, m.unlock.input.Value())
	assert.True(t, m.list.loading)
	assert.NotNil(t, cmd)
}

func TestUnlock_EmptyPassphrase(t *testing.T) {
	app := newTestApp(t, session.Locked)

	m, cmd := update(t, app.model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, screenUnlock, m.currentScreen)
}

func TestUnlock_WrongPassphrase(t *testing.T) {
	app := newTestApp(t, session.Locked)
	m := app.model
	m.unlock.input.SetValue("wrong")
	m.unlock.submitting = true

	m, _ = update(t, m, unlockDoneMsg{err: service.ErrWrongPassphrase})

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "Wrong passphrase", m.errorOverlay.message)
	assert.Empty(t, m.unlock.input.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestListLoaded(t *testing.T) {
	tx := sampleTx()

	tests := []struct {
		name        string
		msg         listLoadedMsg
		wantItems   int
		wantWarning bool
		wantError   bool
	}{
		{name: "all opened", msg: listLoadedMsg{items: []models.Transaction{tx}}, wantItems: 1},
		{
			name: "partial",
			msg: listLoadedMsg{
				items: []models.Transaction{tx},
				err:   &service.BatchError{Failed: []service.ItemError{{ID: "broken", Err: crypto.ErrDecryption}}},
			},
			wantItems:   1,
			wantWarning: true,
		},
		{name: "failed", msg: listLoadedMsg{err: service.ErrOffline}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, session.Unlocked)

			m, _ := update(t, app.model, tt.msg)

			assert.False(t, m.list.loading)
			assert.Len(t, m.list.items, tt.wantItems)
			assert.Equal(t, tt.wantWarning, m.list.warning != "")
			assert.Equal(t, tt.wantError, m.showError)
		})
	}
}

func TestList_Navigation(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	second := sampleTx()
	second.ID = "second"

	m, _ := update(t, app.model, listLoadedMsg{items: []models.Transaction{sampleTx(), second}})
	m, _ = update(t, m, keyRunes("j"))
	m, _ = update(t, m, keyRunes("j"))
	assert.Equal(t, 1, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, "second", m.detail.item.ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)
}

func TestList_Lock(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	app.vault.EXPECT().Lock()

	m, _ := update(t, app.model, listLoadedMsg{items: []models.Transaction{sampleTx()}})
	m, _ = update(t, m, keyRunes("x"))

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.Empty(t, m.list.items)
}

func TestSessionLocked_DropsRecords(t *testing.T) {
	app := newTestApp(t, session.Unlocked)

	m, _ := update(t, app.model, listLoadedMsg{items: []models.Transaction{sampleTx()}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.currentScreen)

	m, _ = update(t, m, sessionLockedMsg{})

	assert.Equal(t, screenUnlock, m.currentScreen)
	assert.Empty(t, m.list.items)
	assert.Empty(t, m.detail.item.ID)
	assert.Equal(t, "Session locked", m.unlock.status)
}

func TestSessionLocked_IgnoredOnUnlockScreen(t *testing.T) {
	app := newTestApp(t, session.Locked)
	m := app.model
	m.unlock.input.SetValue("typing")

	m, cmd := update(t, m, sessionLockedMsg{})

	assert.Nil(t, cmd)
	assert.Equal(t, "typing", m.unlock.input.Value())
}

func TestForm_Create(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	app.txs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			assert.Empty(t, tx.ID)
			assert.Equal(t, models.Sell, tx.Type)
			assert.True(t, decimal.RequireFromString("0.25").Equal(tx.Amount))
			assert.Equal(t, testNow, tx.Timestamp)
			tx.ID = testTxID
			tx.Version = 1
			return tx, nil
		})

	m, _ := update(t, app.model, listLoadedMsg{})
	m, _ = update(t, m, keyRunes("n"))
	require.Equal(t, screenForm, m.currentScreen)

	m.form.inputs[fieldType].SetValue("sell")
	m.form.inputs[fieldAmount].SetValue("0.25")
	m.form.inputs[fieldPrice].SetValue("64000")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.form.submitting)

	saved, ok := findMsg[itemSavedMsg](runCmd(cmd))
	require.True(t, ok)
	require.NoError(t, saved.err)

	m, _ = update(t, m, saved)
	assert.Equal(t, screenList, m.currentScreen)
	assert.True(t, m.list.loading)
	assert.Equal(t, "Saved", m.list.status)
}

func TestForm_InvalidInput(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	m := app.model
	m.form = newFormModel(nil)
	m.currentScreen = screenForm
	m.form.inputs[fieldType].SetValue("gift")
	m.form.inputs[fieldAmount].SetValue("1")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.False(t, m.form.submitting)
}

func TestForm_EditConflict(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	app.txs.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			assert.Equal(t, testTxID, tx.ID)
			assert.EqualValues(t, 3, tx.Version)
			return models.Transaction{}, store.ErrVersionConflict
		})

	m := app.model
	m.detail = detailModel{item: sampleTx()}
	m.currentScreen = screenDetail

	m, _ = update(t, m, keyRunes("e"))
	require.Equal(t, screenForm, m.currentScreen)
	require.True(t, m.form.editing)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	saved, ok := findMsg[itemSavedMsg](runCmd(cmd))
	require.True(t, ok)

	m, _ = update(t, m, saved)
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "another device")
	assert.Equal(t, screenForm, m.currentScreen)
	assert.False(t, m.form.submitting)
}

func TestDetail_DeleteConfirmed(t *testing.T) {
	app := newTestApp(t, session.Unlocked)
	app.txs.EXPECT().Delete(gomock.Any(), testTxID, int64(3)).Return(nil)

	m := app.model
	m.detail = detailModel{item: sampleTx()}
	m.currentScreen = screenDetail

	m, _ = update(t, m, keyRunes("d"))
	require.True(t, m.showConfirm)

	m, cmd := update(t, m, keyRunes("y"))
	assert.False(t, m.showConfirm)

	deleted, ok := findMsg[itemDeletedMsg](runCmd(cmd))
	require.True(t, ok)

	m, _ = update(t, m, deleted)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Equal(t, "Deleted", m.list.status)
}

func TestDetail_DeleteCancelled(t *testing.T) {
	app := newTestApp(t, session.Unlocked)

	m := app.model
	m.detail = detailModel{item: sampleTx()}
	m.currentScreen = screenDetail

	m, _ = update(t, m, keyRunes("d"))
	m, cmd := update(t, m, keyRunes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete.ID)
	assert.Equal(t, screenDetail, m.currentScreen)
}

func TestDetail_CopyID(t *testing.T) {
	tests := []struct {
		name    string
		copyErr error
	}{
		{name: "copied"},
		{name: "clipboard unavailable", copyErr: errors.New("no clipboard")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, session.Unlocked)

			var copied string
			m := app.model
			m.copyText = func(s string) error {
				copied = s
				return tt.copyErr
			}
			m.detail = detailModel{item: sampleTx()}
			m.currentScreen = screenDetail

			m, cmd := update(t, m, keyRunes("c"))
			msg, ok := findMsg[copiedMsg](runCmd(cmd))
			require.True(t, ok)
			assert.Equal(t, testTxID, copied)

			m, _ = update(t, m, msg)
			if tt.copyErr != nil {
				assert.True(t, m.showError)
				return
			}
			assert.Equal(t, "Copied", m.detail.status)
		})
	}
}

func TestBuildInfoOverlay(t *testing.T) {
	app := newTestApp(t, session.Unlocked)

	m, _ := update(t, app.model, listLoadedMsg{})
	m, _ = update(t, m, keyRunes("v"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestCtrlCQuits(t *testing.T) {
	app := newTestApp(t, session.Locked)

	_, cmd := update(t, app.model, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
