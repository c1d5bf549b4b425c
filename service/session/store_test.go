package session_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/driver/drivertest"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCaps = driver.Capabilities{"browser": "test"}

func newTestStore() *session.Store {
	registry := driver.NewRegistry()
	drivertest.Register(registry, testCaps)
	return session.NewStore(registry)
}

func TestStoreCreateAndLookup(t *testing.T) {
	store := newTestStore()
	id, err := store.Create(context.Background(), testCaps)
	require.Nil(t, err)
	require.NotEmpty(t, id)

	sess, ok := store.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, id, sess.ID())
	assert.Equal(t, testCaps, sess.Capabilities())
	assert.IsType(t, &drivertest.Fake{}, sess.Driver())
	assert.Equal(t, 1, store.Len())
}

func TestStoreCreateDistinctIDs(t *testing.T) {
	store := newTestStore()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id, err := store.Create(context.Background(), testCaps)
		require.Nil(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 10, store.Len())
}

func TestStoreCreateNoMatchingDriver(t *testing.T) {
	store := newTestStore()
	id, err := store.Create(context.Background(), driver.Capabilities{"browser": "firefox"})
	assert.Empty(t, id)
	require.NotNil(t, err)
	assert.True(t, types.IsSessionCreationFailed(err))
	assert.Equal(t, 0, store.Len())
}

func TestStoreCreateFactoryFailure(t *testing.T) {
	registry := driver.NewRegistry()
	registry.RegisterType(drivertest.FailingType())
	registry.Register(testCaps, drivertest.FailingTypeName)
	store := session.NewStore(registry)

	id, err := store.Create(context.Background(), testCaps)
	assert.Empty(t, id)
	require.NotNil(t, err)
	assert.True(t, types.IsSessionCreationFailed(err))
	assert.Equal(t, 0, store.Len())
}

func TestStoreRemoveIdempotent(t *testing.T) {
	store := newTestStore()
	id, err := store.Create(context.Background(), testCaps)
	require.Nil(t, err)

	store.Remove(id)
	_, ok := store.Lookup(id)
	assert.False(t, ok)

	before := store.IDs()
	store.Remove(id)
	store.Remove("no-such-session")
	assert.Equal(t, before, store.IDs())
}

func TestStoreConcurrentCreate(t *testing.T) {
	store := newTestStore()
	const workers = 16

	ids := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			id, err := store.Create(context.Background(), testCaps)
			assert.Nil(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, store.Len())
	sort.Strings(ids)
	snapshot := store.IDs()
	sort.Strings(snapshot)
	assert.Equal(t, ids, snapshot)
}

func TestSessionPerformSerialises(t *testing.T) {
	store := newTestStore()
	id, err := store.Create(context.Background(), testCaps)
	require.Nil(t, err)
	sess, ok := store.Lookup(id)
	require.True(t, ok)

	var active, max int
	var mux sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Perform(context.Background(), func(ctx context.Context, drv driver.Driver) (interface{}, error) {
				mux.Lock()
				active++
				if active > max {
					max = active
				}
				mux.Unlock()
				err := drv.Refresh(ctx)
				mux.Lock()
				active--
				mux.Unlock()
				return nil, err
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, max)
}
