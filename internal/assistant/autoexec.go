package assistant

import (
	"context"
	"sync"

	"github.com/goorum04/Nlvip-sub000/internal/tools"
)

// Partition splits proposed calls into the read-only and mutating
// buckets. Calls whose name is not registered go into the read-only
// bucket: invoking them is side-effect free and yields a failure
// outcome the model can see on the next round.
func Partition(registry *tools.Registry, calls []ToolCall) (readOnly, mutating []ToolCall) {
	for _, call := range calls {
		capability, err := registry.Classify(call.Name)
		if err != nil || capability == tools.CapabilityReadOnly {
			readOnly = append(readOnly, call)
			continue
		}

		mutating = append(mutating, call)
	}

	return readOnly, mutating
}

// AutoExecutor runs a batch of calls concurrently. The auto-execution
// phase uses it for read-only calls; the confirmation executor reuses
// it for approved mutating batches.
type AutoExecutor struct {
	invoker *Invoker
}

// NewAutoExecutor creates a parallel batch executor.
func NewAutoExecutor(invoker *Invoker) *AutoExecutor {
	return &AutoExecutor{invoker: invoker}
}

// Run invokes all calls in parallel and returns the outcomes in the
// original call order.
func (e *AutoExecutor) Run(ctx context.Context, calls []ToolCall) []Outcome {
	if len(calls) == 0 {
		return nil
	}

	type indexed struct {
		pos     int
		outcome Outcome
	}

	results := make(chan indexed, len(calls))

	var wg sync.WaitGroup
	for pos, call := range calls {
		wg.Add(1)
		go func(pos int, call ToolCall) {
			defer wg.Done()
			results <- indexed{pos: pos, outcome: e.invoker.Invoke(ctx, call)}
		}(pos, call)
	}

	wg.Wait()
	close(results)

	outcomes := make([]Outcome, len(calls))
	for r := range results {
		outcomes[r.pos] = r.outcome
	}

	return outcomes
}
