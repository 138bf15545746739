package ports

import (
	"context"

	"leetpush/internal/domain/model"
)

// ContentStore reads and writes single files of a remote repository.
type ContentStore interface {
	// GetFile returns model.ErrFileNotFound when the path does not exist on branch.
	GetFile(ctx context.Context, repository, branch, path string) (*model.RemoteFile, error)
	// PutFile creates the file, or updates it when target.PriorSHA is set.
	PutFile(ctx context.Context, target model.RemoteFileTarget, encodedContent, message string) (*model.CommitResult, error)
}
