package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

const (
	publishedDirName = "published"
	failedDirName    = "failed"
	editorSidecarExt = ".editor.json"
)

// Publisher publishes one saved page.
type Publisher interface {
	Publish(ctx context.Context, ref, editorState string) (*model.PublishResult, error)
}

// SyncReport summarises one inbox pass.
type SyncReport struct {
	Published []string
	Failed    map[string]error
	Skipped   bool
}

// InboxSync publishes every saved page dropped into a directory.
type InboxSync struct {
	publisher Publisher
	dir       string
	logger    ports.Logger
	running   sync.Mutex
}

// NewInboxSync constructs an InboxSync over dir.
func NewInboxSync(publisher Publisher, dir string, logger ports.Logger) *InboxSync {
	return &InboxSync{
		publisher: publisher,
		dir:       dir,
		logger:    logger,
	}
}

// Run publishes the pending pages one at a time. Published pages move to
// <dir>/published and failed pages to <dir>/failed, so every page is attempted
// exactly once. A pass that starts while another is still running is skipped.
func (i *InboxSync) Run(ctx context.Context) (*SyncReport, error) {
	if !i.running.TryLock() {
		i.logger.Info(ctx, "inbox sync already running, skipping")
		return &SyncReport{Skipped: true}, nil
	}
	defer i.running.Unlock()

	start := time.Now()
	pages, err := i.pending()
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Failed: map[string]error{}}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := i.publisher.Publish(ctx, page, "")
		if err != nil {
			i.logger.Error(ctx, "inbox page failed", "page", page, "error", err)
			report.Failed[page] = err
			if err := i.archive(page, failedDirName); err != nil {
				i.logger.Error(ctx, "failed to set aside failed page", "page", page, "error", err)
			}
			continue
		}

		if err := i.archive(page, publishedDirName); err != nil {
			i.logger.Error(ctx, "failed to archive published page", "page", page, "error", err)
		}
		i.logger.Info(ctx, "inbox page published", "page", page, "path", result.Target.Path)
		report.Published = append(report.Published, page)
	}

	i.logger.Info(ctx, "inbox sync completed",
		"published", len(report.Published),
		"failed", len(report.Failed),
		"duration", time.Since(start))
	return report, nil
}

func (i *InboxSync) pending() ([]string, error) {
	entries, err := os.ReadDir(i.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}

	pages := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".html" && ext != ".htm" {
			continue
		}
		pages = append(pages, filepath.Join(i.dir, entry.Name()))
	}
	sort.Strings(pages)
	return pages, nil
}

// archive moves page and its editor sidecar into the named subdirectory.
func (i *InboxSync) archive(page, subdir string) error {
	dest := filepath.Join(i.dir, subdir)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	if err := os.Rename(page, filepath.Join(dest, filepath.Base(page))); err != nil {
		return err
	}

	sidecar := page + editorSidecarExt
	if _, err := os.Stat(sidecar); err == nil {
		return os.Rename(sidecar, filepath.Join(dest, filepath.Base(sidecar)))
	}
	return nil
}
