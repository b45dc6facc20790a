package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu      sync.Mutex
	err     error
	block   chan struct{} // При ненулевом значении доставка ждёт закрытия канала
	targets []Target
	texts   []string
}

func (n *recordingNotifier) Notify(ctx context.Context, target Target, text, actionURL string) error {
	if n.block != nil {
		select {
		case <-n.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	n.texts = append(n.texts, text)
	return n.err
}

func TestDispatcherDelivers(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDispatcher(notifier, time.Second, zap.NewNop())
	defer d.Stop()

	id := d.Dispatch(Target{ChatID: 100}, "привет", "")
	require.NotEmpty(t, id)

	result, err := d.Wait(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, TaskStatusDelivered, result.Status)
	assert.Empty(t, result.Reason)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "привет", notifier.texts[0])
}

func TestDispatcherRecordsFailure(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("chat not found")}
	d := NewDispatcher(notifier, time.Second, zap.NewNop())
	defer d.Stop()

	id := d.Dispatch(Target{Username: "ivanov"}, "привет", "")

	result, err := d.Wait(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, TaskStatusFailed, result.Status)
	assert.Equal(t, "chat not found", result.Reason)
}

func TestDispatcherResultPendingWhileRunning(t *testing.T) {
	notifier := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(notifier, time.Second, zap.NewNop())
	defer d.Stop()

	id := d.Dispatch(Target{Username: "ivanov"}, "привет", "")

	result, ok := d.Result(id)
	require.True(t, ok)
	assert.Equal(t, TaskStatusPending, result.Status)

	close(notifier.block)
	final, err := d.Wait(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, TaskStatusDelivered, final.Status)
}

func TestDispatcherUnknownTask(t *testing.T) {
	d := NewDispatcher(&recordingNotifier{}, time.Second, zap.NewNop())
	defer d.Stop()

	_, ok := d.Result("no-such-id")
	assert.False(t, ok)

	_, err := d.Wait(context.Background(), "no-such-id")
	assert.Error(t, err)
}

func TestDispatcherTimeout(t *testing.T) {
	notifier := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(notifier, 20*time.Millisecond, zap.NewNop())
	defer d.Stop()
	defer close(notifier.block)

	id := d.Dispatch(Target{Username: "ivanov"}, "привет", "")

	result, err := d.Wait(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, TaskStatusFailed, result.Status)
}

func TestDispatcherStopCancelsInflight(t *testing.T) {
	notifier := &recordingNotifier{block: make(chan struct{})}
	d := NewDispatcher(notifier, time.Minute, zap.NewNop())
	defer close(notifier.block)

	id := d.Dispatch(Target{Username: "ivanov"}, "привет", "")

	d.Stop()

	result, ok := d.Result(id)
	require.True(t, ok)
	assert.Equal(t, TaskStatusFailed, result.Status)
}
