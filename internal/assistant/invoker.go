package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/goorum04/Nlvip-sub000/internal/metrics"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

// Invoker executes single tool calls against the registry. Every
// failure mode becomes a Failure outcome; invocation never returns an
// error to the caller.
type Invoker struct {
	registry *tools.Registry
	log      *logger.Logger
}

// NewInvoker creates a tool invoker.
func NewInvoker(registry *tools.Registry, log *logger.Logger) *Invoker {
	return &Invoker{
		registry: registry,
		log:      log,
	}
}

// Invoke runs one tool call and folds any failure into the outcome.
func (i *Invoker) Invoke(ctx context.Context, call ToolCall) Outcome {
	outcome := Outcome{ID: call.ID, Name: call.Name}

	tool, err := i.registry.Get(call.Name)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	args, err := call.Arguments.Map()
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	start := time.Now()
	payload, err := i.execute(ctx, tool, args)
	metrics.RecordToolExecution(call.Name, time.Since(start), err)

	if err != nil {
		i.log.Warnw("Tool execution failed",
			"tool", call.Name,
			"call_id", call.ID,
			"error", err,
		)
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.Payload = payload

	return outcome
}

// A panicking tool must not take down the whole turn.
func (i *Invoker) execute(ctx context.Context, tool tools.Tool, args map[string]interface{}) (payload interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()

	return tool.Execute(ctx, args)
}
