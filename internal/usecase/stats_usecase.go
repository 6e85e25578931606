// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrina/internal/domain/service"
)

// StatsUsecase defines the engagement counter pipeline: the HTTP side
// publishes events, the worker side applies them as atomic increments.
type StatsUsecase interface {
	// RecordEvent validates and publishes one stat event for a store.
	RecordEvent(ctx context.Context, storeID string, eventType service.StatEventType) error

	// ApplyEvent maps a consumed event onto its counter and applies the
	// increment. Called by the Pub/Sub push worker.
	ApplyEvent(ctx context.Context, event *service.StatEvent) error
}
