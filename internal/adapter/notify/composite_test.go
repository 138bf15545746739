package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"leetpush/internal/domain/model"
)

type fakeNotifier struct {
	SendFunc func(ctx context.Context, n model.Notification) error
	sent     []model.Notification
}

func (f *fakeNotifier) Send(ctx context.Context, n model.Notification) error {
	f.sent = append(f.sent, n)
	if f.SendFunc != nil {
		return f.SendFunc(ctx, n)
	}
	return nil
}

func TestCompositeDeliversToAll(t *testing.T) {
	failing := &fakeNotifier{SendFunc: func(context.Context, model.Notification) error { return errors.New("boom") }}
	healthy := &fakeNotifier{}

	composite := NewComposite(nil, failing, nil, healthy)
	err := composite.Send(context.Background(), model.Notification{Title: "hi"})

	assert.ErrorContains(t, err, "boom")
	assert.Len(t, failing.sent, 1)
	assert.Len(t, healthy.sent, 1)
}

func TestCompositeEmpty(t *testing.T) {
	assert.NoError(t, NewComposite(nil).Send(context.Background(), model.Notification{}))
}
