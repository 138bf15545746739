package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpush/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type FakeSyncer struct {
	runs atomic.Int32
}

func (f *FakeSyncer) Run(context.Context) (*usecase.SyncReport, error) {
	f.runs.Add(1)
	return &usecase.SyncReport{}, nil
}

func TestRunSyncsImmediatelyAndStops(t *testing.T) {
	syncer := &FakeSyncer{}
	application := New(syncer, nopLogger{}, "@every 1h")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	require.Eventually(t, func() bool { return syncer.runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRunRejectsBadSchedule(t *testing.T) {
	err := New(&FakeSyncer{}, nopLogger{}, "not a schedule").Run(context.Background())
	assert.Error(t, err)
}
