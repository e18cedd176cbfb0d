package assistant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

type recordingAudit struct {
	mu       sync.Mutex
	tokens   []string
	outcomes [][]Outcome
}

func (a *recordingAudit) RecordConfirmation(_ context.Context, token string, outcomes []Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens = append(a.tokens, token)
	a.outcomes = append(a.outcomes, outcomes)
}

func TestConfirmationExecutor(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T, entries map[string]*countingTool) (*ConfirmationExecutor, *RedisTokenStore, *recordingAudit) {
		capabilities := make(map[string]tools.Capability, len(entries))
		for name := range entries {
			capabilities[name] = tools.CapabilityMutating
		}
		registry := newTestRegistry(t, entries, capabilities)

		store, _ := newTokenStore(t, time.Minute)
		audit := &recordingAudit{}
		executor := NewConfirmationExecutor(NewInvoker(registry, logger.Get()), store, audit, logger.Get())

		return executor, store, audit
	}

	t.Run("all calls run even when one fails", func(t *testing.T) {
		entries := map[string]*countingTool{
			"hide_post":     {result: "hidden"},
			"create_notice": {err: errors.New("insert failed")},
			"assign":        {result: "assigned"},
		}
		executor, store, audit := newFixture(t, entries)

		calls := []ToolCall{
			{ID: "c1", Name: "hide_post", Arguments: NewArguments(`{"post_id":"p1"}`)},
			{ID: "c2", Name: "create_notice", Arguments: NewArguments(`{"title":"x","message":"y"}`)},
			{ID: "c3", Name: "assign", Arguments: NewArguments(`{}`)},
		}

		token, err := store.Issue(ctx, []string{"c1", "c2", "c3"})
		require.NoError(t, err)

		result, err := executor.Execute(ctx, token, calls)
		require.NoError(t, err)

		assert.False(t, result.Success)
		require.Len(t, result.Results, 3)
		assert.True(t, result.Results["c1"].Success)
		assert.False(t, result.Results["c2"].Success)
		assert.True(t, result.Results["c3"].Success)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "c2", result.Errors[0].ID)
		assert.Contains(t, result.Errors[0].Error, "insert failed")

		// No short-circuit: everything was attempted
		for name, entry := range entries {
			assert.EqualValues(t, 1, entry.count(), "tool %s should run", name)
		}

		// Audit got the batch
		require.Len(t, audit.tokens, 1)
		assert.Equal(t, token, audit.tokens[0])
		assert.Len(t, audit.outcomes[0], 3)
	})

	t.Run("clean batch succeeds", func(t *testing.T) {
		entries := map[string]*countingTool{"hide_post": {result: "hidden"}}
		executor, store, _ := newFixture(t, entries)

		token, err := store.Issue(ctx, []string{"c1"})
		require.NoError(t, err)

		result, err := executor.Execute(ctx, token, []ToolCall{
			{ID: "c1", Name: "hide_post", Arguments: NewArguments(`{"post_id":"p1"}`)},
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Empty(t, result.Errors)
	})

	t.Run("invalid token blocks execution", func(t *testing.T) {
		entries := map[string]*countingTool{"hide_post": {result: "hidden"}}
		executor, _, audit := newFixture(t, entries)

		_, err := executor.Execute(ctx, "bogus", []ToolCall{
			{ID: "c1", Name: "hide_post"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrPlanTokenInvalid))

		assert.EqualValues(t, 0, entries["hide_post"].count(), "nothing runs on a rejected token")
		assert.Empty(t, audit.tokens)
	})

	t.Run("tampered call set blocks execution", func(t *testing.T) {
		entries := map[string]*countingTool{"hide_post": {result: "hidden"}}
		executor, store, _ := newFixture(t, entries)

		token, err := store.Issue(ctx, []string{"c1"})
		require.NoError(t, err)

		_, err = executor.Execute(ctx, token, []ToolCall{
			{ID: "c1", Name: "hide_post"},
			{ID: "c_extra", Name: "hide_post"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrPlanTokenMismatch))
		assert.EqualValues(t, 0, entries["hide_post"].count())
	})

	t.Run("replay is rejected", func(t *testing.T) {
		entries := map[string]*countingTool{"hide_post": {result: "hidden"}}
		executor, store, _ := newFixture(t, entries)

		calls := []ToolCall{{ID: "c1", Name: "hide_post", Arguments: NewArguments(`{"post_id":"p1"}`)}}

		token, err := store.Issue(ctx, []string{"c1"})
		require.NoError(t, err)

		_, err = executor.Execute(ctx, token, calls)
		require.NoError(t, err)

		_, err = executor.Execute(ctx, token, calls)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrPlanTokenInvalid))
		assert.EqualValues(t, 1, entries["hide_post"].count(), "replay must not re-execute")
	})

	t.Run("unknown call in a confirmed batch fails that call only", func(t *testing.T) {
		entries := map[string]*countingTool{"hide_post": {result: "hidden"}}
		executor, store, _ := newFixture(t, entries)

		token, err := store.Issue(ctx, []string{"c1", "c2"})
		require.NoError(t, err)

		result, err := executor.Execute(ctx, token, []ToolCall{
			{ID: "c1", Name: "hide_post", Arguments: NewArguments(`{"post_id":"p1"}`)},
			{ID: "c2", Name: "ghost_tool"},
		})
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.True(t, result.Results["c1"].Success)
		assert.False(t, result.Results["c2"].Success)
		assert.Contains(t, result.Results["c2"].Error, "unknown tool")
	})
}
