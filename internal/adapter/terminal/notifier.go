package terminal

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

// Notifier prints status messages on the terminal.
type Notifier struct {
	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
	// quietErrors leaves error reporting to the caller's returned error.
	quietErrors bool
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier writes to stdout.
func NewNotifier() *Notifier {
	return NewNotifierTo(os.Stdout)
}

// NewNotifierTo writes to w.
func NewNotifierTo(w io.Writer) *Notifier {
	return &Notifier{
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		failure: pterm.Error.WithWriter(w),
	}
}

// WithoutErrors returns a notifier that drops error-level messages. Commands use it
// because the error they return is printed on exit.
func (n *Notifier) WithoutErrors() *Notifier {
	clone := *n
	clone.quietErrors = true
	return &clone
}

// Send prints the notification title and any fields.
func (n *Notifier) Send(_ context.Context, notification model.Notification) error {
	if n.quietErrors && notification.Level == model.LevelError {
		return nil
	}

	printer := n.info
	switch notification.Level {
	case model.LevelSuccess:
		printer = n.success
	case model.LevelError:
		printer = n.failure
	}

	var builder strings.Builder
	builder.WriteString(notification.Title)
	if notification.Description != "" {
		builder.WriteString("\n")
		builder.WriteString(notification.Description)
	}
	for _, field := range notification.Fields {
		builder.WriteString("\n  ")
		builder.WriteString(field.Name)
		builder.WriteString(": ")
		builder.WriteString(field.Value)
	}
	printer.Println(builder.String())
	return nil
}
