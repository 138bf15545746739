package model

// RemoteFileTarget identifies the file a solution is written to.
// PriorSHA is set only when the file already exists; it makes the write an update.
type RemoteFileTarget struct {
	Repository string
	Branch     string
	Path       string
	PriorSHA   string
}

// IsUpdate reports whether the write must carry the prior content hash.
func (t RemoteFileTarget) IsUpdate() bool {
	return t.PriorSHA != ""
}

// RemoteFile is the metadata of an existing file in the repository.
type RemoteFile struct {
	Path string
	SHA  string
	Size int
}

// CommitResult describes a successful write.
type CommitResult struct {
	Path       string
	ContentSHA string
	CommitSHA  string
	FileURL    string
}

// PublishAction records which write path a publish took.
type PublishAction string

const (
	ActionCreated PublishAction = "created"
	ActionUpdated PublishAction = "updated"
)

// PublishResult is the terminal outcome of a successful publish.
type PublishResult struct {
	Target   RemoteFileTarget
	Action   PublishAction
	Commit   CommitResult
	Snapshot ProblemSnapshot
}
