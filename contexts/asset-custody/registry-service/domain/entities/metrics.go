package entities

import "cartulary/contexts/asset-custody/registry-service/domain/valueobjects"

// RegistryMetrics is the unauthenticated infrastructure projection.
// TotalCount is the identifier counter value, which equals the number of
// successful registrations since ids are never skipped or reused.
type RegistryMetrics struct {
	TotalCount uint64                 `json:"total_count"`
	Authority  valueobjects.Principal `json:"authority"`
}
