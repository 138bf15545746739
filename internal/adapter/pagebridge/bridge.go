// Package pagebridge answers snapshot requests on behalf of a problem page: it loads the
// page, runs the extractor and replies with the snapshot the action asks for.
package pagebridge

import (
	"context"
	"fmt"
	"time"

	"leetpush/internal/adapter/leetcode"
	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

// PageLoader loads a page reference.
type PageLoader interface {
	Load(ctx context.Context, ref, editorStatePath string) (*leetcode.Page, error)
}

// MetadataLookup fills gaps the page left, by problem slug.
type MetadataLookup interface {
	Question(ctx context.Context, slug string) (*leetcode.QuestionMetadata, error)
}

// Bridge implements ports.ProblemSource over loaded pages.
type Bridge struct {
	loader   PageLoader
	metadata MetadataLookup
	timeout  time.Duration
	logger   ports.Logger
}

var _ ports.ProblemSource = (*Bridge)(nil)

// New creates a Bridge. metadata may be nil to disable enrichment.
func New(loader PageLoader, metadata MetadataLookup, timeout time.Duration, logger ports.Logger) *Bridge {
	return &Bridge{
		loader:   loader,
		metadata: metadata,
		timeout:  timeout,
		logger:   logger,
	}
}

type response struct {
	snapshot *model.ProblemSnapshot
	err      error
}

// Request answers one request. A request that gets no answer, because the action is
// unknown, the page cannot be loaded or the timeout elapses, yields model.ErrMissingResponse.
func (b *Bridge) Request(ctx context.Context, req model.Request) (*model.ProblemSnapshot, error) {
	if req.Action != model.ActionGetProblemDetails && req.Action != model.ActionGetCodeToSubmit {
		return nil, fmt.Errorf("%w: unsupported action %q", model.ErrMissingResponse, req.Action)
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	replies := make(chan response, 1)
	go func() {
		snapshot, err := b.handle(ctx, req)
		replies <- response{snapshot: snapshot, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", model.ErrMissingResponse, ctx.Err())
	case reply := <-replies:
		if reply.err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrMissingResponse, reply.err)
		}
		return reply.snapshot, nil
	}
}

func (b *Bridge) handle(ctx context.Context, req model.Request) (*model.ProblemSnapshot, error) {
	page, err := b.loader.Load(ctx, req.PageRef, req.EditorState)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %q is empty", req.PageRef)
	}

	var snapshot model.ProblemSnapshot
	if req.Action == model.ActionGetCodeToSubmit {
		snapshot = leetcode.Extract(page)
	} else {
		snapshot = leetcode.ExtractDetails(page)
	}

	snapshot = b.enrich(ctx, page, snapshot)
	return &snapshot, nil
}

// enrich fills an unknown difficulty and missing tags from LeetCode metadata.
// Lookup failures are logged and leave the snapshot as extracted.
func (b *Bridge) enrich(ctx context.Context, page *leetcode.Page, snapshot model.ProblemSnapshot) model.ProblemSnapshot {
	if b.metadata == nil {
		return snapshot
	}
	if snapshot.Difficulty != model.DifficultyUnknown && len(snapshot.Tags) > 0 {
		return snapshot
	}
	slug := leetcode.Slug(page.URL)
	if slug == "" {
		return snapshot
	}

	meta, err := b.metadata.Question(ctx, slug)
	if err != nil {
		if b.logger != nil {
			b.logger.Warn(ctx, "metadata lookup failed", "slug", slug, "error", err)
		}
		return snapshot
	}

	if snapshot.Difficulty == model.DifficultyUnknown {
		snapshot.Difficulty = meta.Difficulty
	}
	if len(snapshot.Tags) == 0 && len(meta.Topics) > 0 {
		snapshot.Tags = append([]string(nil), meta.Topics...)
	}
	if snapshot.Title == model.UnknownProblem && meta.Title != "" {
		snapshot.Title = meta.Title
	}
	return snapshot
}
