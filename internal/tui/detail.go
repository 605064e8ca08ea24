// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sats-ledger/models"
)

type detailModel struct {
	item   models.Transaction
	status string
}

func (m detailModel) View() string {
	tx := m.item

	var b strings.Builder
	fmt.Fprintf(&b, "Type:     %s\n", typeLabel(tx.Type))
	fmt.Fprintf(&b, "Amount:   %s\n", formatBTC(tx.Amount))
	fmt.Fprintf(&b, "Price:    %s\n", formatFiat(tx.Price))
	fmt.Fprintf(&b, "Fee:      %s\n", formatFiat(tx.Fee))
	fmt.Fprintf(&b, "Total:    %s\n", formatFiat(tx.Total()))
	fmt.Fprintf(&b, "Wallet:   %s\n", valueOrDash(tx.Wallet))
	fmt.Fprintf(&b, "Tags:     %s\n", valueOrDash(strings.Join(tx.Tags, ", ")))
	fmt.Fprintf(&b, "Notes:    %s\n", valueOrDash(tx.Notes))
	fmt.Fprintf(&b, "Time:     %s\n", tx.Timestamp.Local().Format(displayTimeLayout))
	fmt.Fprintf(&b, "ID:       %s\n", tx.ID)
	fmt.Fprintf(&b, "Version:  %d", tx.Version)

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("TRANSACTION", b.String(), "e edit  d delete  c copy id  esc back")
}
