package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/policy"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoHandler struct {
	result interface{}
	err    error
}

func (h *echoHandler) Execute(_ context.Context) (interface{}, error) { return h.result, h.err }
func (h *echoHandler) Describe() string                               { return "echo" }

func TestRegistryCreate(t *testing.T) {
	registry := dispatch.New()
	assert.False(t, registry.CanCreate(command.Status))

	registry.Register(command.Status, func(locator types.Locator, payload types.Payload) (types.Handler, error) {
		return &echoHandler{result: "ok"}, nil
	})
	assert.True(t, registry.CanCreate(command.Status))

	handler, err := registry.Create(command.Status, nil, nil)
	require.Nil(t, err)
	result, err := handler.Execute(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "ok", result)
}

func TestRegistryCreateLastRegistrationWins(t *testing.T) {
	registry := dispatch.New()
	registry.Register(command.Status, func(types.Locator, types.Payload) (types.Handler, error) {
		return &echoHandler{result: "first"}, nil
	})
	registry.Register(command.Status, func(types.Locator, types.Payload) (types.Handler, error) {
		return &echoHandler{result: "second"}, nil
	})
	handler, err := registry.Create(command.Status, nil, nil)
	require.Nil(t, err)
	result, _ := handler.Execute(context.Background())
	assert.Equal(t, "second", result)
}

func TestRegistryConcurrentRegisterAndLookup(t *testing.T) {
	registry := dispatch.New()
	constructor := func(types.Locator, types.Payload) (types.Handler, error) {
		return &echoHandler{result: "ok"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Register(command.Status, constructor)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.CanCreate(command.Status)
			_, _ = registry.Create(command.Status, nil, nil)
		}()
	}
	wg.Wait()
	assert.True(t, registry.CanCreate(command.Status))
}

func TestRegistryCreateUnsupportedFallback(t *testing.T) {
	registry := dispatch.New()
	handler, err := registry.Create("nonExistentCommand", nil, nil)
	require.Nil(t, err)
	require.NotNil(t, handler)

	result, err := handler.Execute(context.Background())
	assert.Nil(t, result)
	require.NotNil(t, err)
	assert.True(t, types.IsUnsupportedCommand(err))
	assert.Contains(t, err.Error(), "nonExistentCommand")
}

func TestRegistryCreateConstructionError(t *testing.T) {
	registry := dispatch.New()
	registry.Register(command.Get, func(locator types.Locator, payload types.Payload) (types.Handler, error) {
		return nil, types.NewConstructionError(command.Get, "missing required parameter url")
	})
	handler, err := registry.Create(command.Get, nil, nil)
	assert.Nil(t, handler)
	require.NotNil(t, err)
	assert.True(t, types.IsConstructionFailed(err))
}

func TestRunUpdatesStats(t *testing.T) {
	ctx, tracker := stats.WithNewTracker(context.Background(), "test-server", nil)

	result, err := dispatch.Run(ctx, command.Status, &echoHandler{result: 42})
	require.Nil(t, err)
	assert.Equal(t, 42, result)

	_, err = dispatch.Run(ctx, command.Status, &echoHandler{err: errors.New("boom")})
	assert.NotNil(t, err)

	_, err = dispatch.Run(ctx, "bogus", &unsupportedStub{})
	assert.True(t, types.IsUnsupportedCommand(err))

	snapshot := tracker.Snapshot()
	assert.Equal(t, 3, snapshot.Executed)
	assert.Equal(t, 2, snapshot.Failed)
	assert.Equal(t, 1, snapshot.Unsupported)
}

type unsupportedStub struct{}

func (h *unsupportedStub) Execute(_ context.Context) (interface{}, error) {
	return nil, types.NewUnsupportedCommandError("bogus")
}
func (h *unsupportedStub) Describe() string { return "unsupported command bogus" }

func TestRunDeniedByPolicy(t *testing.T) {
	// A block list rejects the listed commands and nothing else.
	ctx := policy.WithPolicy(context.Background(), &policy.Policy{
		BlockList: []string{string(command.Quit)},
	})
	executed := false
	_, err := dispatch.Run(ctx, command.Quit, &recordingHandler{executed: &executed})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrDeniedByPolicy))
	assert.False(t, executed)

	result, err := dispatch.Run(ctx, command.Status, &echoHandler{result: "ok"})
	assert.Nil(t, err)
	assert.Equal(t, "ok", result)

	// Deny mode rejects every command.
	ctx = policy.WithPolicy(context.Background(), &policy.Policy{Mode: policy.ModeDeny})
	_, err = dispatch.Run(ctx, command.Status, &recordingHandler{executed: &executed})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrDeniedByPolicy))
	assert.False(t, executed)
}

type recordingHandler struct {
	executed *bool
}

func (h *recordingHandler) Execute(_ context.Context) (interface{}, error) {
	*h.executed = true
	return nil, nil
}
func (h *recordingHandler) Describe() string { return "recording" }
