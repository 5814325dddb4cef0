package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	registryservice "cartulary/contexts/asset-custody/registry-service"
	registryerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	registryhttp "cartulary/contexts/asset-custody/registry-service/transport/http"

	_ "cartulary/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	registry registryservice.Module
}

func New(registry registryservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		registry: registry,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/registry/assets", s.handleRegisterAsset)
	s.mux.HandleFunc("GET /v1/registry/assets/{asset_id}", s.handleGetRecord)
	s.mux.HandleFunc("PUT /v1/registry/assets/{asset_id}", s.handleModifyAsset)
	s.mux.HandleFunc("DELETE /v1/registry/assets/{asset_id}", s.handleDeleteAsset)
	s.mux.HandleFunc("POST /v1/registry/assets/{asset_id}/transfer", s.handleTransferAsset)
	s.mux.HandleFunc("GET /v1/registry/assets/{asset_id}/owner", s.handleGetOwner)
	s.mux.HandleFunc("GET /v1/registry/assets/{asset_id}/authorization", s.handleGetAuthorization)
	s.mux.HandleFunc("GET /v1/registry/metrics", s.handleGetMetrics)
}

func (s *Server) handleRegisterAsset(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req registryhttp.RegisterAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.RegisterAssetHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleModifyAsset(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	var req registryhttp.ModifyAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.ModifyAssetHandler(r.Context(), caller, assetID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransferAsset(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	var req registryhttp.TransferAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if req.NewOwner == "" {
		writeRegistryError(w, http.StatusBadRequest, "missing_new_owner", "new_owner is required")
		return
	}

	resp, err := s.registry.Handler.TransferAssetHandler(r.Context(), caller, assetID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	resp, err := s.registry.Handler.DeleteAssetHandler(r.Context(), caller, assetID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	resp, err := s.registry.Handler.GetRecordHandler(r.Context(), caller, assetID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	resp, err := s.registry.Handler.GetOwnerHandler(r.Context(), assetID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAuthorization(w http.ResponseWriter, r *http.Request) {
	assetID, ok := parseAssetID(w, r)
	if !ok {
		return
	}

	entity := r.URL.Query().Get("entity")
	if entity == "" {
		writeRegistryError(w, http.StatusBadRequest, "missing_entity", "entity query parameter is required")
		return
	}

	resp, err := s.registry.Handler.GetAuthorizationHandler(r.Context(), assetID, entity)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetMetricsHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseAssetID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	assetID, err := strconv.ParseUint(r.PathValue("asset_id"), 10, 64)
	if err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_asset_id", "asset_id must be a positive integer")
		return 0, false
	}
	return assetID, true
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrAssetNotFound):
		writeRegistryError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrDuplicateAsset):
		writeRegistryError(w, http.StatusConflict, "duplicate_asset", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidAttributes):
		writeRegistryError(w, http.StatusUnprocessableEntity, "invalid_attributes", err.Error())
	case errors.Is(err, registryerrors.ErrCapacityThreshold):
		writeRegistryError(w, http.StatusUnprocessableEntity, "capacity_threshold_violation", err.Error())
	case errors.Is(err, registryerrors.ErrTagVerification):
		writeRegistryError(w, http.StatusUnprocessableEntity, "attribute_verification_failure", err.Error())
	case errors.Is(err, registryerrors.ErrOwnershipConflict):
		writeRegistryError(w, http.StatusForbidden, "ownership_conflict", err.Error())
	case errors.Is(err, registryerrors.ErrAccessRestricted):
		writeRegistryError(w, http.StatusForbidden, "access_restricted", err.Error())
	case errors.Is(err, registryerrors.ErrPermissionDenied):
		writeRegistryError(w, http.StatusForbidden, "permission_denied", err.Error())
	case errors.Is(err, registryerrors.ErrElevatedPrivileges):
		writeRegistryError(w, http.StatusForbidden, "elevated_privileges_required", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
