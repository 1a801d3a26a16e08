package kafka

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource feeds a fixed message sequence and records commits. When the
// sequence is exhausted it cancels the run context so Run returns.
type fakeSource struct {
	mu       sync.Mutex
	messages []kafkago.Message
	next     int
	commits  []int64
	cancel   context.CancelFunc
}

func (f *fakeSource) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.next >= len(f.messages) {
		f.cancel()
		return kafkago.Message{}, context.Canceled
	}
	m := f.messages[f.next]
	f.next++
	return m, nil
}

func (f *fakeSource) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.commits = append(f.commits, m.Offset)
	}
	return nil
}

func (f *fakeSource) Close() error { return nil }

func newTestConsumer(source *fakeSource) *Consumer {
	return &Consumer{
		reader:     source,
		backoffMin: time.Millisecond,
		backoffMax: 4 * time.Millisecond,
	}
}

func TestConsumerRun_CommitsAfterHandlerSucceeds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := &fakeSource{
		messages: []kafkago.Message{{Offset: 0}, {Offset: 1}, {Offset: 2}},
		cancel:   cancel,
	}

	var handled []int64
	err := newTestConsumer(source).Run(ctx, func(ctx context.Context, m kafkago.Message) error {
		handled = append(handled, m.Offset)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, handled)
	assert.Equal(t, []int64{0, 1, 2}, source.commits)
}

func TestConsumerRun_RetriesSameMessageUntilAccepted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := &fakeSource{
		messages: []kafkago.Message{{Offset: 0}, {Offset: 1}},
		cancel:   cancel,
	}

	var attempts []int64
	failures := 2
	err := newTestConsumer(source).Run(ctx, func(ctx context.Context, m kafkago.Message) error {
		attempts = append(attempts, m.Offset)
		if m.Offset == 0 && failures > 0 {
			failures--
			return errors.New("transient database error")
		}
		return nil
	})

	require.NoError(t, err)
	// The failed message is redelivered in place, never skipped.
	assert.Equal(t, []int64{0, 0, 0, 1}, attempts)
	assert.Equal(t, []int64{0, 1}, source.commits)
}

func TestConsumerRun_NeverCommitsPastFailedMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	source := &fakeSource{
		messages: []kafkago.Message{{Offset: 0}, {Offset: 1}},
		cancel:   cancel,
	}

	err := newTestConsumer(source).Run(ctx, func(ctx context.Context, m kafkago.Message) error {
		return errors.New("persistent database error")
	})

	require.NoError(t, err)
	// The consumer stalled on offset 0: no commit, no fetch past it. The
	// group offset stays put, so the message survives a restart.
	assert.Empty(t, source.commits)
	assert.Equal(t, 1, source.next)
}
