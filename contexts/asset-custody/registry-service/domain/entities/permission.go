package entities

import "cartulary/contexts/asset-custody/registry-service/domain/valueobjects"

// PermissionEntry is an explicit read grant scoped to one asset and one
// grantee, stored independent of ownership. A missing entry means
// "not explicitly authorized", never an error.
type PermissionEntry struct {
	AssetID    uint64                 `json:"asset_id"`
	Grantee    valueobjects.Principal `json:"grantee"`
	Authorized bool                   `json:"authorized"`
}
