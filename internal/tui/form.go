// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/sats-ledger/models"
)

const formTimeLayout = "2006-01-02 15:04"

const (
	fieldType = iota
	fieldAmount
	fieldPrice
	fieldFee
	fieldWallet
	fieldTags
	fieldNotes
	fieldTime
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldType:   "Type",
	fieldAmount: "Amount",
	fieldPrice:  "Price",
	fieldFee:    "Fee",
	fieldWallet: "Wallet",
	fieldTags:   "Tags",
	fieldNotes:  "Notes",
	fieldTime:   "Time",
}

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         string
	version    int64
	submitting bool
}

// newFormModel returns an empty form, or one filled from item for editing.
func newFormModel(item *models.Transaction) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldType].Placeholder = "buy | sell | transfer"
	inputs[fieldAmount].Placeholder = "0.00000000"
	inputs[fieldPrice].Placeholder = "0.00"
	inputs[fieldFee].Placeholder = "0.00"
	inputs[fieldTags].Placeholder = "comma separated"
	inputs[fieldTime].Placeholder = formTimeLayout + " (empty: now)"
	inputs[fieldType].Focus()

	m := formModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.id = item.ID
	m.version = item.Version
	m.inputs[fieldType].SetValue(string(item.Type))
	m.inputs[fieldAmount].SetValue(item.Amount.String())
	m.inputs[fieldPrice].SetValue(item.Price.String())
	m.inputs[fieldFee].SetValue(item.Fee.String())
	m.inputs[fieldWallet].SetValue(item.Wallet)
	m.inputs[fieldTags].SetValue(strings.Join(item.Tags, ", "))
	m.inputs[fieldNotes].SetValue(item.Notes)
	if !item.Timestamp.IsZero() {
		m.inputs[fieldTime].SetValue(item.Timestamp.Local().Format(formTimeLayout))
	}
	return m
}

func (m formModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// toTransaction parses the form. An empty price or fee is zero and an empty
// time is now.
func (m formModel) toTransaction(now time.Time) (models.Transaction, error) {
	tx := models.Transaction{
		ID:      m.id,
		Version: m.version,
		Type:    models.TransactionType(strings.ToLower(m.value(fieldType))),
		Wallet:  m.value(fieldWallet),
		Tags:    splitTags(m.value(fieldTags)),
		Notes:   m.value(fieldNotes),
	}

	var err error
	if tx.Amount, err = parseDecimal(fieldAmount, m.value(fieldAmount), false); err != nil {
		return models.Transaction{}, err
	}
	if tx.Price, err = parseDecimal(fieldPrice, m.value(fieldPrice), true); err != nil {
		return models.Transaction{}, err
	}
	if tx.Fee, err = parseDecimal(fieldFee, m.value(fieldFee), true); err != nil {
		return models.Transaction{}, err
	}

	tx.Timestamp = now.UTC()
	if raw := m.value(fieldTime); raw != "" {
		ts, err := time.ParseInLocation(formTimeLayout, raw, time.Local)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("%w for %s: %q", errInvalidFormValue, fieldLabels[fieldTime], raw)
		}
		tx.Timestamp = ts.UTC()
	}

	if err = tx.Validate(); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func parseDecimal(field int, raw string, emptyIsZero bool) (decimal.Decimal, error) {
	if raw == "" && emptyIsZero {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w for %s: %q", errInvalidFormValue, fieldLabels[field], raw)
	}
	return d, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m formModel) focusNext() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) focusPrev() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) View() string {
	title := "NEW TRANSACTION"
	if m.editing {
		title = "EDIT TRANSACTION"
	}

	var b strings.Builder
	for i, input := range m.inputs {
		fmt.Fprintf(&b, "%-7s [%s]", fieldLabels[i]+":", input.View())
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}
	if m.submitting {
		b.WriteString("\n\nsaving...")
	}

	return renderPage(title, b.String(), "tab next field  enter save  esc cancel")
}
