package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewSession describes a session to be persisted at creation time.
type NewSession struct {
	Modality Modality
	Filter   WordFilter
	Items    []Item
}

// SessionRecord is the durable form of a session.
type SessionRecord struct {
	ID          uuid.UUID
	Modality    Modality
	Filter      WordFilter
	Status      SessionStatus
	Items       []Item
	Responses   []Response
	Summary     *Summary
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// ItemsOf converts a typed item slice to the Item interface slice.
func ItemsOf[I Item](items []I) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
