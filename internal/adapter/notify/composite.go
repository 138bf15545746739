package notify

import (
	"context"
	"errors"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

// Composite fans a notification out to several notifiers.
type Composite struct {
	logger    ports.Logger
	notifiers []ports.Notifier
}

var _ ports.Notifier = (*Composite)(nil)

// NewComposite drops nil notifiers and keeps the rest in order.
func NewComposite(logger ports.Logger, notifiers ...ports.Notifier) *Composite {
	active := make([]ports.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &Composite{
		logger:    logger,
		notifiers: active,
	}
}

// Send delivers to every notifier; one failing does not stop the others.
func (c *Composite) Send(ctx context.Context, notification model.Notification) error {
	var errs []error
	for _, n := range c.notifiers {
		if err := n.Send(ctx, notification); err != nil {
			if c.logger != nil {
				c.logger.Error(ctx, "notifier failed", "error", err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
