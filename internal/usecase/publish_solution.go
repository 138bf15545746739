package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
	"leetpush/internal/domain/solution"
)

const (
	msgNoDetails = "Could not detect problem details. Make sure you're on a solved problem page."
	msgNoCode    = "Could not retrieve code. Make sure you have submitted a solution."
	msgPushing   = "Pushing to GitHub..."
	msgPushed    = "Successfully pushed to GitHub!"
)

// SolutionService orchestrates extract -> resolve -> build -> check -> write.
type SolutionService struct {
	source   ports.ProblemSource
	store    ports.ContentStore
	settings ports.SettingsStore
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewSolutionService constructs a SolutionService.
func NewSolutionService(
	source ports.ProblemSource,
	store ports.ContentStore,
	settings ports.SettingsStore,
	notifier ports.Notifier,
	logger ports.Logger,
) *SolutionService {
	return &SolutionService{
		source:   source,
		store:    store,
		settings: settings,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for the submission date.
func (s *SolutionService) WithClock(now func() time.Time) *SolutionService {
	s.now = now
	return s
}

// Inspect returns the problem metadata of the page without its code.
func (s *SolutionService) Inspect(ctx context.Context, ref string) (*model.ProblemSnapshot, error) {
	snapshot, err := s.source.Request(ctx, model.Request{Action: model.ActionGetProblemDetails, PageRef: ref})
	if err != nil || snapshot == nil || snapshot.Title == "" {
		s.fail(ctx, msgNoDetails)
		return nil, missingResponse(err)
	}
	return snapshot, nil
}

// Publish extracts the solution behind ref and writes it to the configured repository.
// Each call performs at most one write and is never retried.
func (s *SolutionService) Publish(ctx context.Context, ref, editorState string) (*model.PublishResult, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		s.fail(ctx, "Error: "+err.Error())
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		s.fail(ctx, "Error: "+err.Error())
		return nil, err
	}

	snapshot, err := s.source.Request(ctx, model.Request{
		Action:      model.ActionGetCodeToSubmit,
		PageRef:     ref,
		EditorState: editorState,
	})
	if err != nil || snapshot == nil || snapshot.SourceCode == "" {
		s.fail(ctx, msgNoCode)
		return nil, missingResponse(err)
	}
	if !snapshot.HasCode() {
		s.logger.Warn(ctx, "publishing placeholder, no code was found on the page", "url", snapshot.URL)
	}

	s.send(ctx, model.Notification{Level: model.LevelInfo, Title: msgPushing})

	result, err := s.PublishSnapshot(ctx, settings, *snapshot)
	if err != nil {
		s.logger.Error(ctx, "publish failed", "error", err, "title", snapshot.Title)
		s.fail(ctx, "Error: "+err.Error())
		return nil, err
	}

	s.send(ctx, model.Notification{
		Level: model.LevelSuccess,
		Title: msgPushed,
		Fields: []model.NotificationField{
			{Name: "Problem", Value: result.Snapshot.Title},
			{Name: "Path", Value: result.Target.Path},
			{Name: "Action", Value: string(result.Action)},
			{Name: "File", Value: result.Commit.FileURL},
		},
	})
	return result, nil
}

// PublishSnapshot resolves the path, renders and encodes the content, then writes it.
func (s *SolutionService) PublishSnapshot(ctx context.Context, settings model.Settings, snapshot model.ProblemSnapshot) (*model.PublishResult, error) {
	settings = settings.WithDefaults()

	target := model.RemoteFileTarget{
		Repository: settings.Repository,
		Branch:     settings.Branch,
		Path:       solution.ResolvePath(snapshot, settings.Organization),
	}
	encoded := solution.EncodeContent(solution.BuildContent(snapshot, s.now()))

	target, err := s.CheckExisting(ctx, target)
	if err != nil {
		return nil, err
	}

	message := solution.CommitMessage(snapshot.Title, target.IsUpdate())
	commit, err := s.store.PutFile(ctx, target, encoded, message)
	if err != nil {
		return nil, err
	}

	action := model.ActionCreated
	if target.IsUpdate() {
		action = model.ActionUpdated
	}
	s.logger.Info(ctx, "solution published", "path", target.Path, "action", action, "repository", target.Repository)

	return &model.PublishResult{
		Target:   target,
		Action:   action,
		Commit:   *commit,
		Snapshot: snapshot,
	}, nil
}

// CheckExisting decides between create and update. A missing file returns the target
// unchanged, an existing one returns it with PriorSHA set, anything else is an error.
// An existing entry without a content hash (symlink, submodule) cannot be updated.
// The check and the later write are not atomic.
func (s *SolutionService) CheckExisting(ctx context.Context, target model.RemoteFileTarget) (model.RemoteFileTarget, error) {
	target.PriorSHA = ""

	file, err := s.store.GetFile(ctx, target.Repository, target.Branch, target.Path)
	if errors.Is(err, model.ErrFileNotFound) {
		return target, nil
	}
	if err != nil {
		return target, err
	}
	if file == nil || file.SHA == "" {
		return target, fmt.Errorf("existing entry at %s is not a regular file", target.Path)
	}

	target.PriorSHA = file.SHA
	return target, nil
}

func (s *SolutionService) fail(ctx context.Context, message string) {
	s.send(ctx, model.Notification{Level: model.LevelError, Title: message})
}

func (s *SolutionService) send(ctx context.Context, notification model.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, notification); err != nil {
		s.logger.Error(ctx, "failed to send notification", "error", err)
	}
}

func missingResponse(err error) error {
	if err == nil {
		return model.ErrMissingResponse
	}
	if errors.Is(err, model.ErrMissingResponse) {
		return err
	}
	return fmt.Errorf("%w: %v", model.ErrMissingResponse, err)
}
