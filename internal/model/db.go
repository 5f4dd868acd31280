package model

import "time"

// WebhookEvent records a processed Stripe event delivery. Stripe retries
// deliveries that are not acknowledged with a 2xx, so this table lets the
// reconciler skip notification dispatch for an event it has already handled.
type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;not null"` // stripe event id
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}
