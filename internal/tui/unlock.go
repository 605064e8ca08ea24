// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type unlockModel struct {
	input      textinput.Model
	spinner    spinner.Model
	submitting bool
	status     string
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.EchoMode = textinput.EchoPassword
	input.Width = 40
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return unlockModel{input: input, spinner: s}
}

func (m unlockModel) View() string {
	body := "Passphrase: " + m.input.View()
	if m.submitting {
		body += "\n\n" + m.spinner.View() + " deriving key..."
	}
	if m.status != "" {
		body += "\n\n" + warnStyle.Render(m.status)
	}

	return renderPage("UNLOCK", body, "enter unlock")
}
