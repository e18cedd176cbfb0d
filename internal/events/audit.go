// Package events publishes assistant audit events to Kafka.
package events

import (
	"context"
	"time"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/kafka"
	"github.com/goorum04/Nlvip-sub000/internal/assistant"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

// TopicAssistantAudit receives one event per executed confirmation batch.
const TopicAssistantAudit = "gym.assistant.audit"

// ConfirmationEvent records a confirmed batch and its per-call results.
type ConfirmationEvent struct {
	PlanToken  string              `json:"plan_token"`
	ExecutedAt time.Time           `json:"executed_at"`
	CallCount  int                 `json:"call_count"`
	Failed     int                 `json:"failed"`
	Outcomes   []assistant.Outcome `json:"outcomes"`
}

// AuditPublisher publishes confirmation audit events to Kafka.
type AuditPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

var _ assistant.AuditRecorder = (*AuditPublisher)(nil)

// NewAuditPublisher creates an audit publisher.
func NewAuditPublisher(producer *kafka.Producer, log *logger.Logger) *AuditPublisher {
	return &AuditPublisher{
		producer: producer,
		log:      log,
	}
}

// RecordConfirmation publishes the batch record. Publish failures are
// logged and swallowed; auditing never blocks execution results.
func (p *AuditPublisher) RecordConfirmation(ctx context.Context, token string, outcomes []assistant.Outcome) {
	event := ConfirmationEvent{
		PlanToken:  token,
		ExecutedAt: time.Now().UTC(),
		CallCount:  len(outcomes),
		Outcomes:   outcomes,
	}
	for _, outcome := range outcomes {
		if !outcome.Success {
			event.Failed++
		}
	}

	if err := p.producer.Publish(ctx, TopicAssistantAudit, token, event); err != nil {
		p.log.Warnw("Failed to publish confirmation audit event",
			"topic", TopicAssistantAudit,
			"error", err,
		)
	}
}
