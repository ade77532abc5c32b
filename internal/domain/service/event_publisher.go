package service

import (
	"context"
)

// Event types published by the Penny Prime lifecycle.
const (
	EventCouponUsed    = "coupon_used"
	EventMarginSettled = "margin_settled"
)

// PrimeEvent represents a Penny Prime lifecycle event for downstream consumers
// (settlement ledgers, seller dashboards, notification fan-out).
type PrimeEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	Type        string  `json:"type"`
	CollabID    string  `json:"collab_id"`
	CollabCode  string  `json:"collab_code"`
	AgentUserID string  `json:"agent_user_id,omitempty"`
	Amount      float64 `json:"amount"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPrimeEvent publishes a lifecycle event for async processing
	PublishPrimeEvent(ctx context.Context, event *PrimeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
