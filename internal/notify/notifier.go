// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/logger"
	"github.com/MKhiriev/go-dev-server/internal/tui"
)

// Message is a single notification.
type Message struct {
	Title    string
	Message  string
	Subtitle string
}

// Notifier reports the first error of each failed compilation. Warnings
// are ignored.
type Notifier struct {
	title string

	mu  sync.Mutex
	out io.Writer

	logger *logger.Logger
}

// NewNotifier returns a Notifier titling its messages with title and
// printing them to out. A nil out only logs.
func NewNotifier(title string, out io.Writer, logger *logger.Logger) *Notifier {
	return &Notifier{
		title:  title,
		out:    out,
		logger: logger,
	}
}

// Notify implements the notification callback.
func (n *Notifier) Notify(severity bundle.Severity, errs []bundle.CompileError) {
	msg, ok := n.message(severity, errs)
	if !ok {
		return
	}

	n.logger.Error().
		Str("title", msg.Title).
		Str("subtitle", msg.Subtitle).
		Int("errors", len(errs)).
		Msg(msg.Message)

	if n.out == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, tui.RenderNotification(msg.Title, msg.Message, msg.Subtitle))
}

func (n *Notifier) message(severity bundle.Severity, errs []bundle.CompileError) (Message, bool) {
	if severity != bundle.SeverityError || len(errs) == 0 {
		return Message{}, false
	}

	first := errs[0]
	return Message{
		Title:    n.title,
		Message:  string(severity) + ": " + first.Name,
		Subtitle: first.File,
	}, true
}

// ProjectName returns the "name" of dir/package.json, or the base name of
// dir when there is none.
func ProjectName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	data, err := os.ReadFile(filepath.Join(abs, "package.json"))
	if err == nil {
		var pkg struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
			return pkg.Name
		}
	}

	return filepath.Base(abs)
}
