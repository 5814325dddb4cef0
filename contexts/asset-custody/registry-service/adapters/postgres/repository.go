package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the registry tables and seeds the counter row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&assetModel{}, &permissionModel{}, &counterModel{}, &outboxModel{}); err != nil {
		return err
	}
	seed := counterModel{ID: counterRowID, Value: 0}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
}

// CreateAsset advances the counter row under a row lock and inserts the
// record plus the creator grant in the same transaction, so a failed insert
// never burns an identifier.
func (r *Repository) CreateAsset(ctx context.Context, record entities.AssetRecord) (uint64, error) {
	var assetID uint64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter counterModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", counterRowID).
			First(&counter).
			Error
		if err != nil {
			return err
		}
		counter.Value++

		if err := tx.Save(&counter).Error; err != nil {
			return err
		}

		row := assetModelFromEntity(record)
		row.AssetID = counter.Value
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateAsset
			}
			return err
		}

		grant := permissionModel{
			AssetID:    row.AssetID,
			Grantee:    record.Owner.String(),
			Authorized: true,
		}
		if err := tx.Create(&grant).Error; err != nil {
			return err
		}

		assetID = row.AssetID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assetID, nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID uint64) (entities.AssetRecord, error) {
	var row assetModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AssetRecord{}, domainerrors.ErrAssetNotFound
		}
		return entities.AssetRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateAsset(ctx context.Context, record entities.AssetRecord) error {
	result := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ?", record.AssetID).
		Updates(map[string]any{
			"name":             record.Name,
			"payload_size":     record.PayloadSize,
			"attribute_schema": record.AttributeSchema,
			"tags":             append([]string(nil), record.Tags...),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}

func (r *Repository) UpdateOwner(ctx context.Context, assetID uint64, owner valueobjects.Principal) error {
	result := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ?", assetID).
		Update("owner", owner.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}

// DeleteAsset removes the record row only; permission rows for the id are
// deliberately left behind.
func (r *Repository) DeleteAsset(ctx context.Context, assetID uint64) error {
	result := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Delete(&assetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}

func (r *Repository) CounterValue(ctx context.Context) (uint64, error) {
	var counter counterModel
	err := r.db.WithContext(ctx).
		Where("id = ?", counterRowID).
		First(&counter).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Value, nil
}

func (r *Repository) ExplicitGrant(ctx context.Context, assetID uint64, grantee valueobjects.Principal) (bool, error) {
	var row permissionModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ? AND grantee = ?", assetID, grantee.String()).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return row.Authorized, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	row, err := outboxModelFromEnvelope(envelope)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
