package entities

import "cartulary/contexts/asset-custody/registry-service/domain/valueobjects"

// AssetRecord is the stored entity for one registered digital asset.
// AssetID and RegisteredAt are assigned once at registration and never change;
// Owner changes only through an ownership transfer.
type AssetRecord struct {
	AssetID         uint64                 `json:"asset_id"`
	Name            string                 `json:"name"`
	Owner           valueobjects.Principal `json:"owner"`
	PayloadSize     int64                  `json:"payload_size"`
	RegisteredAt    uint64                 `json:"registered_at"`
	AttributeSchema string                 `json:"attribute_schema"`
	Tags            []string               `json:"tags"`
}
