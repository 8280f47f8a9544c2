package vfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainEvents(t *testing.T, ch <-chan Event, n int) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		select {
		case e := <-ch:
			events = append(events, e)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
	return events
}

// TestSubscribeReceivesMutations tests that each committed mutation reaches
// the subscriber in order.
func TestSubscribeReceivesMutations(t *testing.T) {
	s := newTestStore(t)
	ch, cancel := s.Subscribe(8)
	defer cancel()

	require.NoError(t, s.Create("/f.txt", []byte("x"), false))
	require.NoError(t, s.WriteFile("/f.txt", []byte("y"), false))
	require.NoError(t, s.ChangePermissions("/f.txt", Permissions{Read: true}))
	require.NoError(t, s.Delete("/f.txt"))

	events := drainEvents(t, ch, 4)
	assert.Equal(t, EventCreate, events[0].Type)
	assert.Equal(t, EventWrite, events[1].Type)
	assert.Equal(t, EventChmod, events[2].Type)
	assert.Equal(t, EventDelete, events[3].Type)
	for _, e := range events {
		assert.Equal(t, "/f.txt", e.Path)
		assert.False(t, e.Time.IsZero())
	}
}

// TestSubscribeCancelClosesChannel tests subscription teardown.
func TestSubscribeCancelClosesChannel(t *testing.T) {
	s := newTestStore(t)
	ch, cancel := s.Subscribe(1)
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// A second cancel is a no-op.
	cancel()
	require.NoError(t, s.Create("/f.txt", nil, false))
}

// TestSubscribeFullBufferDrops tests that a saturated subscriber never
// blocks mutations.
func TestSubscribeFullBufferDrops(t *testing.T) {
	s := newTestStore(t)
	ch, cancel := s.Subscribe(1)
	defer cancel()

	require.NoError(t, s.Create("/a.txt", nil, false))
	require.NoError(t, s.Create("/b.txt", nil, false))
	require.NoError(t, s.Create("/c.txt", nil, false))

	events := drainEvents(t, ch, 1)
	assert.Equal(t, "/a.txt", events[0].Path)
	select {
	case e, ok := <-ch:
		if ok {
			t.Fatalf("expected no further buffered events, got %+v", e)
		}
	default:
	}
}

// TestFailedMutationPublishesNothing tests that rejected operations stay off
// the event stream.
func TestFailedMutationPublishesNothing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("/f.txt", nil, false))

	ch, cancel := s.Subscribe(4)
	defer cancel()

	assert.ErrorIs(t, s.Create("/f.txt", nil, false), ErrAlreadyExists)
	assert.ErrorIs(t, s.Delete("/nope"), ErrNotFound)

	select {
	case e := <-ch:
		t.Fatalf("unexpected event %+v", e)
	default:
	}
}
