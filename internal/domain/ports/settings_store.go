package ports

import (
	"context"

	"leetpush/internal/domain/model"
)

// SettingsStore persists the user's publish settings.
type SettingsStore interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}
