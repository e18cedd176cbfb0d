package assistant

import (
	"context"

	"github.com/goorum04/Nlvip-sub000/internal/metrics"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

// AuditRecorder receives a record of every confirmed batch. Recording
// is best effort and never affects the batch result.
type AuditRecorder interface {
	RecordConfirmation(ctx context.Context, token string, outcomes []Outcome)
}

// ConfirmResult is the outcome of executing a confirmed batch.
type ConfirmResult struct {
	Success bool               `json:"success"`
	Results map[string]Outcome `json:"results"`
	Errors  []Failure          `json:"errors,omitempty"`
}

// ConfirmationExecutor runs batches of mutating calls the admin has
// approved. Every call in the batch is attempted; one failure never
// short-circuits the rest.
type ConfirmationExecutor struct {
	invoker *Invoker
	tokens  TokenStore
	audit   AuditRecorder
	log     *logger.Logger
}

// NewConfirmationExecutor creates a confirmed-batch executor.
func NewConfirmationExecutor(invoker *Invoker, tokens TokenStore, audit AuditRecorder, log *logger.Logger) *ConfirmationExecutor {
	return &ConfirmationExecutor{
		invoker: invoker,
		tokens:  tokens,
		audit:   audit,
		log:     log,
	}
}

// Execute verifies the plan token, runs every call and reports
// per-call outcomes. Success means zero failures.
func (e *ConfirmationExecutor) Execute(ctx context.Context, token string, calls []ToolCall) (*ConfirmResult, error) {
	if err := e.tokens.Consume(ctx, token, callIDs(calls)); err != nil {
		metrics.ConfirmBatches.WithLabelValues("rejected").Inc()
		return nil, err
	}

	result := &ConfirmResult{
		Success: true,
		Results: make(map[string]Outcome, len(calls)),
	}

	executor := NewAutoExecutor(e.invoker)
	for _, outcome := range executor.Run(ctx, calls) {
		result.Results[outcome.ID] = outcome
		if !outcome.Success {
			result.Success = false
			result.Errors = append(result.Errors, Failure{
				ID:    outcome.ID,
				Name:  outcome.Name,
				Error: outcome.Error,
			})
		}
	}

	status := "success"
	if !result.Success {
		status = "partial_failure"
		e.log.Warnw("Confirmed batch finished with failures",
			"calls", len(calls),
			"failed", len(result.Errors),
		)
	}
	metrics.ConfirmBatches.WithLabelValues(status).Inc()

	if e.audit != nil {
		e.audit.RecordConfirmation(ctx, token, outcomesOf(result.Results, calls))
	}

	return result, nil
}

func outcomesOf(results map[string]Outcome, calls []ToolCall) []Outcome {
	outcomes := make([]Outcome, 0, len(calls))
	for _, call := range calls {
		outcomes = append(outcomes, results[call.ID])
	}

	return outcomes
}
