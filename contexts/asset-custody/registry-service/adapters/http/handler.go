package httpadapter

import (
	"context"
	"log/slog"

	"cartulary/contexts/asset-custody/registry-service/application"
	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"
	"cartulary/contexts/asset-custody/registry-service/ports"
	httptransport "cartulary/contexts/asset-custody/registry-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Register an asset
// @Description Creates a new asset record owned by the caller and returns the minted id.
// @Tags asset-custody/registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Caller principal identity"
// @Param request body httptransport.RegisterAssetRequest true "Asset fields"
// @Success 200 {object} httptransport.RegisterAssetResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets [post]
func (h Handler) RegisterAssetHandler(
	ctx context.Context,
	caller string,
	req httptransport.RegisterAssetRequest,
) (httptransport.RegisterAssetResponse, error) {
	principal, err := valueobjects.NewPrincipal(caller)
	if err != nil {
		return httptransport.RegisterAssetResponse{}, err
	}

	assetID, err := h.Service.Register(ctx, principal, ports.RegisterInput{
		Name:            req.Name,
		PayloadSize:     req.PayloadSize,
		AttributeSchema: req.AttributeSchema,
		Tags:            req.Tags,
	})
	if err != nil {
		return httptransport.RegisterAssetResponse{}, err
	}

	resp := httptransport.RegisterAssetResponse{Status: "success"}
	resp.Data.AssetID = assetID
	return resp, nil
}

// @Summary Modify an asset
// @Description Replaces the four revisable fields; caller must own the record.
// @Tags asset-custody/registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Caller principal identity"
// @Param asset_id path int true "Asset id"
// @Param request body httptransport.ModifyAssetRequest true "Replacement fields"
// @Success 200 {object} httptransport.ModifyAssetResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id} [put]
func (h Handler) ModifyAssetHandler(
	ctx context.Context,
	caller string,
	assetID uint64,
	req httptransport.ModifyAssetRequest,
) (httptransport.ModifyAssetResponse, error) {
	principal, err := valueobjects.NewPrincipal(caller)
	if err != nil {
		return httptransport.ModifyAssetResponse{}, err
	}

	err = h.Service.Modify(ctx, principal, assetID, ports.RegisterInput{
		Name:            req.Name,
		PayloadSize:     req.PayloadSize,
		AttributeSchema: req.AttributeSchema,
		Tags:            req.Tags,
	})
	if err != nil {
		return httptransport.ModifyAssetResponse{}, err
	}
	return httptransport.ModifyAssetResponse{Status: "success"}, nil
}

// @Summary Transfer asset ownership
// @Tags asset-custody/registry
// @Accept json
// @Produce json
// @Param X-Caller-Id header string true "Caller principal identity"
// @Param asset_id path int true "Asset id"
// @Param request body httptransport.TransferAssetRequest true "New owner"
// @Success 200 {object} httptransport.TransferAssetResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id}/transfer [post]
func (h Handler) TransferAssetHandler(
	ctx context.Context,
	caller string,
	assetID uint64,
	req httptransport.TransferAssetRequest,
) (httptransport.TransferAssetResponse, error) {
	principal, err := valueobjects.NewPrincipal(caller)
	if err != nil {
		return httptransport.TransferAssetResponse{}, err
	}
	newOwner, err := valueobjects.NewPrincipal(req.NewOwner)
	if err != nil {
		return httptransport.TransferAssetResponse{}, err
	}

	if err := h.Service.Transfer(ctx, principal, assetID, newOwner); err != nil {
		return httptransport.TransferAssetResponse{}, err
	}
	return httptransport.TransferAssetResponse{Status: "success"}, nil
}

// @Summary Delete an asset
// @Description Irreversibly removes the record; the id is never reassigned.
// @Tags asset-custody/registry
// @Produce json
// @Param X-Caller-Id header string true "Caller principal identity"
// @Param asset_id path int true "Asset id"
// @Success 200 {object} httptransport.DeleteAssetResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id} [delete]
func (h Handler) DeleteAssetHandler(
	ctx context.Context,
	caller string,
	assetID uint64,
) (httptransport.DeleteAssetResponse, error) {
	principal, err := valueobjects.NewPrincipal(caller)
	if err != nil {
		return httptransport.DeleteAssetResponse{}, err
	}

	if err := h.Service.Delete(ctx, principal, assetID); err != nil {
		return httptransport.DeleteAssetResponse{}, err
	}
	return httptransport.DeleteAssetResponse{Status: "success"}, nil
}

// @Summary Get an asset record
// @Description Caller must hold an explicit grant or be the current owner.
// @Tags asset-custody/registry
// @Produce json
// @Param X-Caller-Id header string true "Caller principal identity"
// @Param asset_id path int true "Asset id"
// @Success 200 {object} httptransport.GetRecordResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id} [get]
func (h Handler) GetRecordHandler(
	ctx context.Context,
	caller string,
	assetID uint64,
) (httptransport.GetRecordResponse, error) {
	principal, err := valueobjects.NewPrincipal(caller)
	if err != nil {
		return httptransport.GetRecordResponse{}, err
	}

	record, err := h.Service.GetRecord(ctx, principal, assetID)
	if err != nil {
		return httptransport.GetRecordResponse{}, err
	}
	return httptransport.GetRecordResponse{
		Status: "success",
		Data:   toDTO(record),
	}, nil
}

// @Summary Registry metrics
// @Description Counter value and fixed system authority; no authorization.
// @Tags asset-custody/registry
// @Produce json
// @Success 200 {object} httptransport.MetricsResponse
// @Router /v1/registry/metrics [get]
func (h Handler) GetMetricsHandler(ctx context.Context) (httptransport.MetricsResponse, error) {
	metrics, err := h.Service.GetMetrics(ctx)
	if err != nil {
		return httptransport.MetricsResponse{}, err
	}
	resp := httptransport.MetricsResponse{Status: "success"}
	resp.Data.TotalCount = metrics.TotalCount
	resp.Data.Authority = metrics.Authority.String()
	return resp, nil
}

// @Summary Asset owner lookup
// @Tags asset-custody/registry
// @Produce json
// @Param asset_id path int true "Asset id"
// @Success 200 {object} httptransport.OwnerResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id}/owner [get]
func (h Handler) GetOwnerHandler(ctx context.Context, assetID uint64) (httptransport.OwnerResponse, error) {
	owner, err := h.Service.GetOwner(ctx, assetID)
	if err != nil {
		return httptransport.OwnerResponse{}, err
	}
	resp := httptransport.OwnerResponse{Status: "success"}
	resp.Data.AssetID = assetID
	resp.Data.Owner = owner.String()
	return resp, nil
}

// @Summary Authorization analysis
// @Description Reports explicit grant, ownership, and their OR for one entity.
// @Tags asset-custody/registry
// @Produce json
// @Param asset_id path int true "Asset id"
// @Param entity query string true "Queried principal identity"
// @Success 200 {object} httptransport.AuthorizationResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/registry/assets/{asset_id}/authorization [get]
func (h Handler) GetAuthorizationHandler(
	ctx context.Context,
	assetID uint64,
	entity string,
) (httptransport.AuthorizationResponse, error) {
	principal, err := valueobjects.NewPrincipal(entity)
	if err != nil {
		return httptransport.AuthorizationResponse{}, err
	}

	report, err := h.Service.GetAuthorization(ctx, assetID, principal)
	if err != nil {
		return httptransport.AuthorizationResponse{}, err
	}
	resp := httptransport.AuthorizationResponse{Status: "success"}
	resp.Data.AssetID = report.AssetID
	resp.Data.Entity = report.Entity.String()
	resp.Data.Explicit = report.Explicit
	resp.Data.IsOwner = report.IsOwner
	resp.Data.CanAccess = report.CanAccess
	return resp, nil
}

func toDTO(record entities.AssetRecord) httptransport.AssetRecordDTO {
	return httptransport.AssetRecordDTO{
		AssetID:         record.AssetID,
		Name:            record.Name,
		Owner:           record.Owner.String(),
		PayloadSize:     record.PayloadSize,
		RegisteredAt:    record.RegisteredAt,
		AttributeSchema: record.AttributeSchema,
		Tags:            record.Tags,
	}
}
