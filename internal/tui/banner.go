// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const maxSubtitleWidth = 60

// RenderRunning renders the message shown once the preview server answers.
func RenderRunning(url string, notes ...string) string {
	data := successStyle.Render("DONE") + " Your application is running here: " + urlStyle.Render(url)
	if len(notes) > 0 {
		data += "\n" + strings.Join(notes, "\n")
	}
	return renderPage("Preview server", data, "ctrl+c: stop")
}

// RenderNotification renders a compilation error notification.
func RenderNotification(title, message, subtitle string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(valueOrNA(title)))
	b.WriteString("\n")
	b.WriteString(errorStyle.Render(message))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fitText(subtitle, maxSubtitleWidth)))
	}

	return overlayBoxStyle.Render(b.String())
}
