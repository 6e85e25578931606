package service

import (
	"context"
)

// StatEventType identifies one engagement counter event.
type StatEventType string

// The counter events a storefront can emit.
const (
	StatView          StatEventType = "view"
	StatClick         StatEventType = "click"
	StatWhatsappClick StatEventType = "whatsapp_click"
	StatWebClick      StatEventType = "web_click"
	StatFollow        StatEventType = "follow"
	StatUnfollow      StatEventType = "unfollow"
	StatProductSell   StatEventType = "product_sell"
	StatOpinion       StatEventType = "opinion"
)

// Valid reports whether the event type is known.
func (t StatEventType) Valid() bool {
	switch t {
	case StatView, StatClick, StatWhatsappClick, StatWebClick,
		StatFollow, StatUnfollow, StatProductSell, StatOpinion:
		return true
	}

	return false
}

// StatEvent is a single engagement counter event, applied asynchronously
// by the stats worker as an atomic increment on the store document.
type StatEvent struct {
	RequestID string        `json:"request_id,omitempty"` // For distributed tracing.
	EventID   string        `json:"event_id"`
	StoreID   string        `json:"store_id"`
	Type      StatEventType `json:"type"`
}

// EventPublisher defines the interface for publishing stat events to a message queue.
type EventPublisher interface {
	// PublishStatEvent publishes a counter event for async processing.
	PublishStatEvent(ctx context.Context, event *StatEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
