package entities

import "cartulary/contexts/asset-custody/registry-service/domain/valueobjects"

// AuthorizationReport is returned by authorization analysis. It reports the
// answer rather than enforcing it: CanAccess is the OR of the explicit grant
// flag and current ownership.
type AuthorizationReport struct {
	AssetID   uint64                 `json:"asset_id"`
	Entity    valueobjects.Principal `json:"entity"`
	Explicit  bool                   `json:"explicit"`
	IsOwner   bool                   `json:"is_owner"`
	CanAccess bool                   `json:"can_access"`
}
