package application

import (
	"context"
	"log/slog"
	"strconv"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/domain/validation"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"
)

// Service implements the registry operations. Every precondition is checked
// before any write; the first failing check aborts the whole operation with
// its specific error kind.
type Service struct {
	Repo                 ports.AssetRepository
	Permissions          ports.PermissionStore
	Outbox               ports.OutboxWriter
	Clock                ports.LogicalClock
	IDGen                ports.IDGenerator
	Authority            valueobjects.Principal
	DisableEventEmission bool
	Logger               *slog.Logger
}

// Register creates a new asset record owned by the caller and grants the
// caller an explicit read permission in the same atomic step. Returns the
// freshly minted asset id.
func (s Service) Register(ctx context.Context, caller valueobjects.Principal, input ports.RegisterInput) (uint64, error) {
	if err := validateRevisableFields(input); err != nil {
		return 0, err
	}

	record := entities.AssetRecord{
		Name:            input.Name,
		Owner:           caller,
		PayloadSize:     input.PayloadSize,
		RegisteredAt:    s.Clock.Now(),
		AttributeSchema: input.AttributeSchema,
		Tags:            append([]string(nil), input.Tags...),
	}

	assetID, err := s.Repo.CreateAsset(ctx, record)
	if err != nil {
		return 0, err
	}

	s.emit(ctx, "asset.registered", assetID, record.RegisteredAt, map[string]any{
		"asset_id": assetID,
		"owner":    caller.String(),
		"name":     record.Name,
	})

	ResolveLogger(s.Logger).Info("asset registered",
		"event", "asset_registered",
		"module", "asset-custody/registry-service",
		"layer", "application",
		"asset_id", assetID,
		"owner", caller.String(),
	)
	return assetID, nil
}

// Modify replaces the four revisable fields of an existing record. Identity
// fields stay untouched; counter and permission entries are not changed.
func (s Service) Modify(ctx context.Context, caller valueobjects.Principal, assetID uint64, input ports.RegisterInput) error {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if record.Owner != caller {
		return domainerrors.ErrOwnershipConflict
	}
	if err := validateRevisableFields(input); err != nil {
		return err
	}

	record.Name = input.Name
	record.PayloadSize = input.PayloadSize
	record.AttributeSchema = input.AttributeSchema
	record.Tags = append([]string(nil), input.Tags...)

	return s.Repo.UpdateAsset(ctx, record)
}

// Transfer hands ownership to newOwner. Explicit permission entries are not
// moved or revoked; the former owner only loses the implicit owner privilege.
func (s Service) Transfer(ctx context.Context, caller valueobjects.Principal, assetID uint64, newOwner valueobjects.Principal) error {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if record.Owner != caller {
		return domainerrors.ErrOwnershipConflict
	}

	if err := s.Repo.UpdateOwner(ctx, assetID, newOwner); err != nil {
		return err
	}

	s.emit(ctx, "asset.transferred", assetID, s.Clock.Now(), map[string]any{
		"asset_id":  assetID,
		"old_owner": caller.String(),
		"new_owner": newOwner.String(),
	})

	ResolveLogger(s.Logger).Info("asset ownership transferred",
		"event", "asset_transferred",
		"module", "asset-custody/registry-service",
		"layer", "application",
		"asset_id", assetID,
		"new_owner", newOwner.String(),
	)
	return nil
}

// Delete removes the record. The identifier is never reassigned and the
// asset's permission entries are left in place; every read re-checks record
// existence, so the orphans are unreachable.
func (s Service) Delete(ctx context.Context, caller valueobjects.Principal, assetID uint64) error {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if record.Owner != caller {
		return domainerrors.ErrOwnershipConflict
	}

	if err := s.Repo.DeleteAsset(ctx, assetID); err != nil {
		return err
	}

	s.emit(ctx, "asset.deleted", assetID, s.Clock.Now(), map[string]any{
		"asset_id": assetID,
		"owner":    caller.String(),
	})

	ResolveLogger(s.Logger).Info("asset deleted",
		"event", "asset_deleted",
		"module", "asset-custody/registry-service",
		"layer", "application",
		"asset_id", assetID,
	)
	return nil
}

// GetRecord returns a copy of the full record. The caller must hold an
// explicit true grant or be the current owner.
func (s Service) GetRecord(ctx context.Context, caller valueobjects.Principal, assetID uint64) (entities.AssetRecord, error) {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return entities.AssetRecord{}, err
	}

	if record.Owner != caller {
		explicit, err := s.Permissions.ExplicitGrant(ctx, assetID, caller)
		if err != nil {
			return entities.AssetRecord{}, err
		}
		if !explicit {
			return entities.AssetRecord{}, domainerrors.ErrAccessRestricted
		}
	}

	record.Tags = append([]string(nil), record.Tags...)
	return record, nil
}

// GetMetrics reports the counter value and the fixed system authority.
// No preconditions, no authorization.
func (s Service) GetMetrics(ctx context.Context) (entities.RegistryMetrics, error) {
	total, err := s.Repo.CounterValue(ctx)
	if err != nil {
		return entities.RegistryMetrics{}, err
	}
	return entities.RegistryMetrics{
		TotalCount: total,
		Authority:  s.Authority,
	}, nil
}

func (s Service) GetOwner(ctx context.Context, assetID uint64) (valueobjects.Principal, error) {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return "", err
	}
	return record.Owner, nil
}

// GetAuthorization reports the explicit grant flag, ownership, and their OR
// for one entity. Pure read; it never raises an authorization error itself.
func (s Service) GetAuthorization(ctx context.Context, assetID uint64, entity valueobjects.Principal) (entities.AuthorizationReport, error) {
	record, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return entities.AuthorizationReport{}, err
	}

	explicit, err := s.Permissions.ExplicitGrant(ctx, assetID, entity)
	if err != nil {
		return entities.AuthorizationReport{}, err
	}
	isOwner := record.Owner == entity

	return entities.AuthorizationReport{
		AssetID:   assetID,
		Entity:    entity,
		Explicit:  explicit,
		IsOwner:   isOwner,
		CanAccess: explicit || isOwner,
	}, nil
}

// validateRevisableFields enforces the field bounds shared by registration
// and modification. Check order fixes which error wins when several fields
// are bad: name/schema, then payload size, then tags.
func validateRevisableFields(input ports.RegisterInput) error {
	if !validation.ValidText(input.Name, 1, validation.NameMaxLen) {
		return domainerrors.ErrInvalidAttributes
	}
	if !validation.ValidText(input.AttributeSchema, 1, validation.SchemaMaxLen) {
		return domainerrors.ErrInvalidAttributes
	}
	if !validation.ValidPayloadSize(input.PayloadSize) {
		return domainerrors.ErrCapacityThreshold
	}
	if !validation.ValidTagSequence(input.Tags) {
		return domainerrors.ErrTagVerification
	}
	return nil
}

// emit appends a registry event to the outbox. Emission is best effort: the
// registry mutation has already committed, so a failing append is logged and
// swallowed rather than turned into a partially-reported failure.
func (s Service) emit(ctx context.Context, eventType string, assetID uint64, occurredAt uint64, payload map[string]any) {
	if s.Outbox == nil || s.DisableEventEmission {
		return
	}

	eventID := ""
	if s.IDGen != nil {
		id, err := s.IDGen.NewID(ctx)
		if err != nil {
			ResolveLogger(s.Logger).Warn("event id generation failed",
				"event", "registry_event_id_failed",
				"module", "asset-custody/registry-service",
				"layer", "application",
				"error", err.Error(),
			)
			return
		}
		eventID = id
	}

	err := s.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:        eventID,
		EventType:      eventType,
		SourceService:  "registry-service",
		OccurredAt:     occurredAt,
		EntityType:     "asset_record",
		EntityID:       strconv.FormatUint(assetID, 10),
		PayloadVersion: 1,
		Payload:        payload,
	})
	if err != nil {
		ResolveLogger(s.Logger).Warn("outbox append failed",
			"event", "registry_outbox_append_failed",
			"module", "asset-custody/registry-service",
			"layer", "application",
			"event_type", eventType,
			"asset_id", assetID,
			"error", err.Error(),
		)
	}
}
