package ports

import (
	"context"

	"leetpush/internal/domain/model"
)

// Notifier delivers status messages to the user (terminal, Discord, ...).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
