package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AssetRecordDTO struct {
	AssetID         uint64   `json:"asset_id"`
	Name            string   `json:"name"`
	Owner           string   `json:"owner"`
	PayloadSize     int64    `json:"payload_size"`
	RegisteredAt    uint64   `json:"registered_at"`
	AttributeSchema string   `json:"attribute_schema"`
	Tags            []string `json:"tags"`
}

type RegisterAssetRequest struct {
	Name            string   `json:"name"`
	PayloadSize     int64    `json:"payload_size"`
	AttributeSchema string   `json:"attribute_schema"`
	Tags            []string `json:"tags"`
}

type RegisterAssetResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID uint64 `json:"asset_id"`
	} `json:"data"`
}

type ModifyAssetRequest struct {
	Name            string   `json:"name"`
	PayloadSize     int64    `json:"payload_size"`
	AttributeSchema string   `json:"attribute_schema"`
	Tags            []string `json:"tags"`
}

type ModifyAssetResponse struct {
	Status string `json:"status"`
}

type TransferAssetRequest struct {
	NewOwner string `json:"new_owner"`
}

type TransferAssetResponse struct {
	Status string `json:"status"`
}

type DeleteAssetResponse struct {
	Status string `json:"status"`
}

type GetRecordResponse struct {
	Status string         `json:"status"`
	Data   AssetRecordDTO `json:"data"`
}

type MetricsResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalCount uint64 `json:"total_count"`
		Authority  string `json:"authority"`
	} `json:"data"`
}

type OwnerResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID uint64 `json:"asset_id"`
		Owner   string `json:"owner"`
	} `json:"data"`
}

type AuthorizationResponse struct {
	Status string `json:"status"`
	Data   struct {
		AssetID   uint64 `json:"asset_id"`
		Entity    string `json:"entity"`
		Explicit  bool   `json:"explicit"`
		IsOwner   bool   `json:"is_owner"`
		CanAccess bool   `json:"can_access"`
	} `json:"data"`
}
