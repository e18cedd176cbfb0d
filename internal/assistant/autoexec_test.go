package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

func TestPartition(t *testing.T) {
	registry := newTestRegistry(t,
		map[string]*countingTool{
			"find_member": {},
			"hide_post":   {},
		},
		map[string]tools.Capability{
			"find_member": tools.CapabilityReadOnly,
			"hide_post":   tools.CapabilityMutating,
		},
	)

	calls := []ToolCall{
		{ID: "1", Name: "find_member"},
		{ID: "2", Name: "hide_post"},
		{ID: "3", Name: "made_up_tool"},
	}

	readOnly, mutating := Partition(registry, calls)

	// Unknown names land in the read-only bucket: invoking them is
	// side-effect free and reports the failure back to the model.
	require.Len(t, readOnly, 2)
	assert.Equal(t, "find_member", readOnly[0].Name)
	assert.Equal(t, "made_up_tool", readOnly[1].Name)

	require.Len(t, mutating, 1)
	assert.Equal(t, "hide_post", mutating[0].Name)
}

func TestAutoExecutor_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("outcomes keep call order", func(t *testing.T) {
		entries := make(map[string]*countingTool)
		var calls []ToolCall
		for i := 0; i < 8; i++ {
			name := fmt.Sprintf("tool_%d", i)
			entries[name] = &countingTool{result: name}
			calls = append(calls, ToolCall{ID: fmt.Sprintf("call_%d", i), Name: name})
		}

		registry := newTestRegistry(t, entries, nil)
		executor := NewAutoExecutor(NewInvoker(registry, logger.Get()))

		outcomes := executor.Run(ctx, calls)

		require.Len(t, outcomes, len(calls))
		for i, outcome := range outcomes {
			assert.Equal(t, calls[i].ID, outcome.ID)
			assert.True(t, outcome.Success)
			assert.Equal(t, calls[i].Name, outcome.Payload)
		}
		for name, entry := range entries {
			assert.EqualValues(t, 1, entry.count(), "tool %s should run exactly once", name)
		}
	})

	t.Run("failures do not affect sibling calls", func(t *testing.T) {
		ok := &countingTool{result: "fine"}
		registry := newTestRegistry(t, map[string]*countingTool{"list_trainers": ok}, nil)
		executor := NewAutoExecutor(NewInvoker(registry, logger.Get()))

		outcomes := executor.Run(ctx, []ToolCall{
			{ID: "a", Name: "missing_tool"},
			{ID: "b", Name: "list_trainers"},
		})

		require.Len(t, outcomes, 2)
		assert.False(t, outcomes[0].Success)
		assert.True(t, outcomes[1].Success)
	})

	t.Run("empty batch", func(t *testing.T) {
		registry := newTestRegistry(t, nil, nil)
		executor := NewAutoExecutor(NewInvoker(registry, logger.Get()))

		assert.Nil(t, executor.Run(ctx, nil))
	})
}
