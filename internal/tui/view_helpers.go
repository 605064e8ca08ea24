// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/sats-ledger/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const displayTimeLayout = "2006-01-02 15:04"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// formatBTC prints an amount with up to eight decimals, the satoshi
// precision, without trailing zeros.
func formatBTC(d decimal.Decimal) string {
	return d.Round(8).String() + " BTC"
}

func formatFiat(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func typeLabel(t models.TransactionType) string {
	label := string(t)
	switch t {
	case models.Buy:
		return buyStyle.Render(label)
	case models.Sell:
		return sellStyle.Render(label)
	default:
		return label
	}
}
