package di

import (
	"log/slog"
	"os"

	"leetpush/internal/adapter/discord"
	"leetpush/internal/adapter/github"
	"leetpush/internal/adapter/leetcode"
	"leetpush/internal/adapter/logging"
	"leetpush/internal/adapter/notify"
	"leetpush/internal/adapter/pagebridge"
	"leetpush/internal/adapter/settings"
	"leetpush/internal/adapter/terminal"
	"leetpush/internal/config"
	"leetpush/internal/domain/ports"
	"leetpush/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stderr, cfg.LogLevel)
}

func provideSettingsStore(cfg *config.Config, logger ports.Logger) *settings.Store {
	return settings.NewStore(cfg.SettingsPath, settings.NewKeyringVault(), cfg.GitHubToken, logger)
}

func provideContentStore(cfg *config.Config, store *settings.Store, logger ports.Logger) ports.ContentStore {
	return github.New(cfg.GitHubAPIURL, cfg.RequestTimeout, store.TokenSource(), logger)
}

func provideProblemSource(cfg *config.Config, logger ports.Logger) ports.ProblemSource {
	loader := leetcode.NewLoader(cfg.RequestTimeout, logger)
	if !cfg.EnrichMetadata {
		return pagebridge.New(loader, nil, cfg.ResponseTimeout, logger)
	}
	metadata := leetcode.NewMetadataClient(cfg.RequestTimeout, logger)
	return pagebridge.New(loader, metadata, cfg.ResponseTimeout, logger)
}

// provideNotifier serves the watcher, whose failures are only visible as notifications.
func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return newNotifier(cfg, logger, terminal.NewNotifier())
}

// provideCommandNotifier serves one-shot commands, which print their error on exit.
func provideCommandNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return newNotifier(cfg, logger, terminal.NewNotifier().WithoutErrors())
}

func newNotifier(cfg *config.Config, logger ports.Logger, console *terminal.Notifier) ports.Notifier {
	notifiers := []ports.Notifier{console}
	if cfg.DiscordWebhookURL != "" {
		notifiers = append(notifiers, discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger))
	}
	return notify.NewComposite(logger, notifiers...)
}

func provideInboxSync(cfg *config.Config, publisher usecase.Publisher, logger ports.Logger) *usecase.InboxSync {
	return usecase.NewInboxSync(publisher, cfg.InboxDir, logger)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.WatchCron
}
