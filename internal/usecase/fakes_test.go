package usecase

import (
	"context"

	"leetpush/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type FakeProblemSource struct {
	RequestFunc func(ctx context.Context, req model.Request) (*model.ProblemSnapshot, error)
	requests    []model.Request
}

func (f *FakeProblemSource) Request(ctx context.Context, req model.Request) (*model.ProblemSnapshot, error) {
	f.requests = append(f.requests, req)
	if f.RequestFunc != nil {
		return f.RequestFunc(ctx, req)
	}
	return nil, nil
}

type putCall struct {
	target  model.RemoteFileTarget
	content string
	message string
}

type FakeContentStore struct {
	GetFileFunc func(ctx context.Context, repository, branch, path string) (*model.RemoteFile, error)
	PutFileFunc func(ctx context.Context, target model.RemoteFileTarget, encodedContent, message string) (*model.CommitResult, error)
	puts        []putCall
}

func (f *FakeContentStore) GetFile(ctx context.Context, repository, branch, path string) (*model.RemoteFile, error) {
	if f.GetFileFunc != nil {
		return f.GetFileFunc(ctx, repository, branch, path)
	}
	return nil, model.ErrFileNotFound
}

func (f *FakeContentStore) PutFile(ctx context.Context, target model.RemoteFileTarget, encodedContent, message string) (*model.CommitResult, error) {
	f.puts = append(f.puts, putCall{target: target, content: encodedContent, message: message})
	if f.PutFileFunc != nil {
		return f.PutFileFunc(ctx, target, encodedContent, message)
	}
	return &model.CommitResult{Path: target.Path, CommitSHA: "commit"}, nil
}

type FakeSettingsStore struct {
	Settings model.Settings
	LoadErr  error
}

func (f *FakeSettingsStore) Load(context.Context) (model.Settings, error) {
	return f.Settings, f.LoadErr
}

func (f *FakeSettingsStore) Save(_ context.Context, settings model.Settings) error {
	f.Settings = settings
	return nil
}

type FakeNotifier struct {
	sent []model.Notification
}

func (f *FakeNotifier) Send(_ context.Context, n model.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

func (f *FakeNotifier) titles() []string {
	titles := make([]string, 0, len(f.sent))
	for _, n := range f.sent {
		titles = append(titles, n.Title)
	}
	return titles
}
