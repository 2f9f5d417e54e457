// internal/event/emitter.go
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	AffiliationRequested Type = "affiliation_requested"
	AffiliationApproved  Type = "affiliation_approved"
	AffiliationRejected  Type = "affiliation_rejected"
	AffiliationReverted  Type = "affiliation_reverted"
	ProviderRemoved      Type = "provider_removed"
	DocumentReviewed     Type = "document_reviewed"
	DocumentReverted     Type = "document_reverted"
	LicenseVerified      Type = "license_verified"
	LicenseReverted      Type = "license_reverted"
	LicenseExpired       Type = "license_expired"
)

// Event is emitted after a successful state transition. Delivery is
// best-effort; nothing in the workflow depends on a subscriber seeing it.
type Event struct {
	Type     Type
	EntityID uuid.UUID
	At       time.Time
}

// Emitter fans domain events out to whatever subscriber subsystem is wired
// in. Services call it after the transition has committed, never before.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// NoOpEmitter discards events.
type NoOpEmitter struct{}

func (NoOpEmitter) Emit(ctx context.Context, e Event) {}

// SlogEmitter writes events to the structured log. Good enough for
// single-process deployments where the log stream is the event feed.
type SlogEmitter struct {
	Logger *slog.Logger
}

func (s SlogEmitter) Emit(ctx context.Context, e Event) {
	s.Logger.InfoContext(ctx, "domain event", "type", string(e.Type), "entity_id", e.EntityID, "at", e.At)
}
