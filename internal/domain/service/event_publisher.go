package service

import (
	"context"
)

// OrderEvent is published after a checkout commits, for downstream consumers
// (fulfilment, receipts). It carries no payment data.
type OrderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	PurchaseID string `json:"purchase_id"`
	CustomerID string `json:"customer_id"`
	ItemCount  int    `json:"item_count"`
	Total      string `json:"total"`
	OrderedAt  string `json:"ordered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order-confirmation event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
