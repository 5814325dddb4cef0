package postgresadapter

import (
	"encoding/json"
	"time"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"

	"github.com/google/uuid"
)

const counterRowID = 1

type assetModel struct {
	AssetID         uint64   `gorm:"column:asset_id;primaryKey"`
	Name            string   `gorm:"column:name"`
	Owner           string   `gorm:"column:owner"`
	PayloadSize     int64    `gorm:"column:payload_size"`
	RegisteredAt    uint64   `gorm:"column:registered_at"`
	AttributeSchema string   `gorm:"column:attribute_schema"`
	Tags            []string `gorm:"column:tags;type:text[]"`
}

func (assetModel) TableName() string {
	return "asset_records"
}

type permissionModel struct {
	AssetID    uint64 `gorm:"column:asset_id;primaryKey"`
	Grantee    string `gorm:"column:grantee;primaryKey"`
	Authorized bool   `gorm:"column:authorized"`
}

func (permissionModel) TableName() string {
	return "permission_entries"
}

type counterModel struct {
	ID    int    `gorm:"column:id;primaryKey"`
	Value uint64 `gorm:"column:value"`
}

func (counterModel) TableName() string {
	return "registry_counter"
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "registry_outbox"
}

func assetModelFromEntity(record entities.AssetRecord) assetModel {
	return assetModel{
		AssetID:         record.AssetID,
		Name:            record.Name,
		Owner:           record.Owner.String(),
		PayloadSize:     record.PayloadSize,
		RegisteredAt:    record.RegisteredAt,
		AttributeSchema: record.AttributeSchema,
		Tags:            append([]string(nil), record.Tags...),
	}
}

func (m assetModel) toEntity() entities.AssetRecord {
	return entities.AssetRecord{
		AssetID:         m.AssetID,
		Name:            m.Name,
		Owner:           valueobjects.Principal(m.Owner),
		PayloadSize:     m.PayloadSize,
		RegisteredAt:    m.RegisteredAt,
		AttributeSchema: m.AttributeSchema,
		Tags:            append([]string(nil), m.Tags...),
	}
}

func outboxModelFromEnvelope(envelope ports.EventEnvelope) (outboxModel, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return outboxModel{}, err
	}
	outboxID := envelope.EventID
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	return outboxModel{
		OutboxID:  outboxID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
