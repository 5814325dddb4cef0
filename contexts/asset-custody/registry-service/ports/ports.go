package ports

import (
	"context"
	"time"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/internal/shared/events"
)

// RegisterInput carries the four caller-revisable asset fields. The same
// shape is reused for modification.
type RegisterInput struct {
	Name            string
	PayloadSize     int64
	AttributeSchema string
	Tags            []string
}

// AssetRepository owns the asset map and the identifier counter.
type AssetRepository interface {
	// CreateAsset mints the next identifier from the counter, stores the
	// record under it and writes the creator's permission entry in one
	// atomic step. The counter strictly increases by one per call and
	// identifiers are never reused, including after deletion.
	CreateAsset(ctx context.Context, record entities.AssetRecord) (uint64, error)
	GetAsset(ctx context.Context, assetID uint64) (entities.AssetRecord, error)
	// UpdateAsset replaces the revisable fields of an existing record.
	// Identity fields (asset id, owner, registered-at) are left untouched.
	UpdateAsset(ctx context.Context, record entities.AssetRecord) error
	UpdateOwner(ctx context.Context, assetID uint64, owner valueobjects.Principal) error
	DeleteAsset(ctx context.Context, assetID uint64) error
	CounterValue(ctx context.Context) (uint64, error)
}

// PermissionStore owns the (asset id, grantee) governance map.
type PermissionStore interface {
	// ExplicitGrant reports the stored authorization flag. A missing entry
	// reads as false, never as an error.
	ExplicitGrant(ctx context.Context, assetID uint64, grantee valueobjects.Principal) (bool, error)
}

// LogicalClock is the host-supplied monotonically non-decreasing clock used
// to stamp registrations.
type LogicalClock interface {
	Now() uint64
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, EventEnvelope) error) error
}
