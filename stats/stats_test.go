package stats

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerUpdate(t *testing.T) {
	tracker := &Tracker{ServerID: "srv-1"}
	tracker.Update(Delta{Executed: 1, SessionsCreated: 1})
	tracker.Update(Delta{Executed: 1, Failed: 1, Unsupported: 1})
	tracker.Update(Delta{SessionsCreated: -1, SessionsRemoved: 1})

	snapshot := tracker.Snapshot()
	assert.Equal(t, "srv-1", snapshot.ServerID)
	assert.Equal(t, 2, snapshot.Executed)
	assert.Equal(t, 1, snapshot.Failed)
	assert.Equal(t, 1, snapshot.Unsupported)
	assert.Equal(t, 0, snapshot.SessionsCreated)
	assert.Equal(t, 1, snapshot.SessionsRemoved)
}

func TestTrackerConcurrentUpdate(t *testing.T) {
	tracker := &Tracker{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(Delta{Executed: 1})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, tracker.Snapshot().Executed)
}

func TestTrackerOnChange(t *testing.T) {
	var seen []Snapshot
	tracker := &Tracker{}
	tracker.OnChange(func(s Snapshot) { seen = append(seen, s) })
	tracker.Update(Delta{Executed: 1})
	tracker.Update(Delta{Executed: 1, Failed: 1})

	require.Equal(t, 2, len(seen))
	assert.Equal(t, 1, seen[0].Executed)
	assert.Equal(t, 2, seen[1].Executed)
	assert.Equal(t, 1, seen[1].Failed)
}

func TestNilTracker(t *testing.T) {
	var tracker *Tracker
	tracker.Update(Delta{Executed: 1})
	assert.Equal(t, Snapshot{}, tracker.Snapshot())
}

func TestContextHelpers(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx, tracker := WithNewTracker(context.Background(), "srv-2", nil)
	require.NotNil(t, tracker)
	assert.False(t, tracker.StartedAt.IsZero())

	found, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, tracker, found)
}
