// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/sats-ledger/models"
)

const listNotesWidth = 24

type listModel struct {
	items   []models.Transaction
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	warning string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Transaction, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Transaction{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func listRow(tx models.Transaction) string {
	return fmt.Sprintf("%s  %-8s %16s @ %12s  %s",
		tx.Timestamp.Local().Format(displayTimeLayout),
		typeLabel(tx.Type),
		formatBTC(tx.Amount),
		formatFiat(tx.Price),
		fitText(tx.Notes, listNotesWidth),
	)
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading...")
	case len(m.items) == 0:
		b.WriteString("No transactions yet")
	default:
		for i, tx := range m.items {
			row := listRow(tx)
			if i == m.idx {
				row = selectedStyle.Render("> " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row)
			if i < len(m.items)-1 {
				b.WriteString("\n")
			}
		}
	}

	if m.warning != "" {
		b.WriteString("\n\n" + warnStyle.Render(m.warning))
	}
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("TRANSACTIONS", b.String(), "enter open  n new  r reload  x lock  v about  q quit")
}
