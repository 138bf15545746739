//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leetpush/internal/adapter/logging"
	"leetpush/internal/adapter/settings"
	"leetpush/internal/app"
	"leetpush/internal/config"
	"leetpush/internal/domain/ports"
	"leetpush/internal/usecase"
)

var baseSet = wire.NewSet(
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideSettingsStore,
	wire.Bind(new(ports.SettingsStore), new(*settings.Store)),
)

var serviceSet = wire.NewSet(
	baseSet,
	provideContentStore,
	provideProblemSource,
	usecase.NewSolutionService,
)

// InitializeService wires the publish use case.
func InitializeService(cfg *config.Config) (*usecase.SolutionService, error) {
	wire.Build(serviceSet, provideCommandNotifier)
	return nil, nil
}

// InitializeSettings wires the settings store alone.
func InitializeSettings(cfg *config.Config) (*settings.Store, error) {
	wire.Build(baseSet)
	return nil, nil
}

// InitializeWatcher wires the scheduled inbox watcher.
func InitializeWatcher(cfg *config.Config) (*app.App, error) {
	wire.Build(
		serviceSet,
		provideNotifier,
		wire.Bind(new(usecase.Publisher), new(*usecase.SolutionService)),
		provideInboxSync,
		wire.Bind(new(app.Syncer), new(*usecase.InboxSync)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}
