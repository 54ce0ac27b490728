package ports

import (
	"context"
	"time"
)

// StatusChangedEvent announces one committed status change.
type StatusChangedEvent struct {
	EventID    string    `json:"eventId"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	StatusType string    `json:"statusType"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}

// StatusEventPublisher delivers events after the transaction that produced them committed.
type StatusEventPublisher interface {
	Publish(ctx context.Context, events ...StatusChangedEvent) error
}

// TransitionObserver counts status change attempts.
type TransitionObserver interface {
	TransitionAccepted(entityType, from, to string)
	TransitionRejected(entityType, from, to string)
}

// PurgeObserver counts activity records removed by retention.
type PurgeObserver interface {
	ActivityLogsPurged(count int64)
}
