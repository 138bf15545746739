package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"leetpush/internal/domain/ports"
	"leetpush/internal/usecase"
)

const (
	syncTimeout  = 10 * time.Minute
	stopDeadline = 5 * time.Second
)

// Syncer runs one pass over the inbox.
type Syncer interface {
	Run(ctx context.Context) (*usecase.SyncReport, error)
}

// App manages the lifecycle of the inbox watcher.
type App struct {
	cron     *cron.Cron
	syncer   Syncer
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(syncer Syncer, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		syncer:   syncer,
		logger:   logger,
		schedule: schedule,
	}
}

// Run syncs the inbox once immediately and then according to the cron schedule,
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first inbox sync immediately")
	if _, err := a.syncer.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial inbox sync failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopDeadline):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob(parent context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(parent, syncTimeout)
		defer cancel()
		if _, err := a.syncer.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled inbox sync failed", "error", err)
		}
	})
	return err
}
