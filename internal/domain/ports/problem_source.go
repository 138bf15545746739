package ports

import (
	"context"

	"leetpush/internal/domain/model"
)

// ProblemSource answers snapshot requests on behalf of a problem page.
// A nil snapshot or model.ErrMissingResponse means the page did not answer.
type ProblemSource interface {
	Request(ctx context.Context, req model.Request) (*model.ProblemSnapshot, error)
}
