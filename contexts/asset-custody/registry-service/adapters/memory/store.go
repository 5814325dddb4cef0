package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"

	"github.com/google/uuid"
)

// Store keeps the whole registry state in process memory: the asset map, the
// permission governance map, the identifier counter, a Lamport-style logical
// clock and a pending/published outbox.
type Store struct {
	mu sync.RWMutex

	assets      map[uint64]entities.AssetRecord
	permissions map[permissionKey]bool
	counter     uint64
	clock       uint64
	outbox      map[string]outboxRecord
}

type permissionKey struct {
	AssetID uint64
	Grantee valueobjects.Principal
}

type outboxRecord struct {
	Message     ports.OutboxMessage
	Status      string
	PublishedAt *time.Time
}

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

var errOutboxNotFound = errors.New("outbox message not found")

func NewStore() *Store {
	return &Store{
		assets:      make(map[uint64]entities.AssetRecord),
		permissions: make(map[permissionKey]bool),
		outbox:      make(map[string]outboxRecord),
	}
}

func (s *Store) CreateAsset(_ context.Context, record entities.AssetRecord) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	assetID := s.counter
	record.AssetID = assetID
	record.Tags = append([]string(nil), record.Tags...)
	s.assets[assetID] = record
	s.permissions[permissionKey{AssetID: assetID, Grantee: record.Owner}] = true
	return assetID, nil
}

func (s *Store) GetAsset(_ context.Context, assetID uint64) (entities.AssetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.assets[assetID]
	if !ok {
		return entities.AssetRecord{}, domainerrors.ErrAssetNotFound
	}
	record.Tags = append([]string(nil), record.Tags...)
	return record, nil
}

func (s *Store) UpdateAsset(_ context.Context, record entities.AssetRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.assets[record.AssetID]
	if !ok {
		return domainerrors.ErrAssetNotFound
	}
	stored.Name = record.Name
	stored.PayloadSize = record.PayloadSize
	stored.AttributeSchema = record.AttributeSchema
	stored.Tags = append([]string(nil), record.Tags...)
	s.assets[record.AssetID] = stored
	return nil
}

func (s *Store) UpdateOwner(_ context.Context, assetID uint64, owner valueobjects.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.assets[assetID]
	if !ok {
		return domainerrors.ErrAssetNotFound
	}
	stored.Owner = owner
	s.assets[assetID] = stored
	return nil
}

// DeleteAsset removes the record only. Permission entries for the id stay in
// the governance map; reads re-check record existence so they are inert.
func (s *Store) DeleteAsset(_ context.Context, assetID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[assetID]; !ok {
		return domainerrors.ErrAssetNotFound
	}
	delete(s.assets, assetID)
	return nil
}

func (s *Store) CounterValue(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter, nil
}

func (s *Store) ExplicitGrant(_ context.Context, assetID uint64, grantee valueobjects.Principal) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissions[permissionKey{AssetID: assetID, Grantee: grantee}], nil
}

// Now implements ports.LogicalClock as a strictly increasing counter.
func (s *Store) Now() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock++
	return s.clock
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	outboxID := envelope.EventID
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	s.outbox[outboxID] = outboxRecord{
		Message: ports.OutboxMessage{
			OutboxID:  outboxID,
			EventType: envelope.EventType,
			Payload:   payload,
			CreatedAt: time.Now().UTC(),
		},
		Status: outboxStatusPending,
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	pending := make([]ports.OutboxMessage, 0)
	for _, record := range s.outbox {
		if record.Status == outboxStatusPending {
			pending = append(pending, record.Message)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.outbox[outboxID]
	if !ok {
		return errOutboxNotFound
	}
	record.Status = outboxStatusPublished
	record.PublishedAt = &publishedAt
	s.outbox[outboxID] = record
	return nil
}
