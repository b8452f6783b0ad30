package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"sayyara-vehicle-api/internal/model"
	"sayyara-vehicle-api/internal/service"
)

type VehicleHandler struct {
	validationSvc *service.ValidationService
	validate      *validator.Validate
}

func NewVehicleHandler(validationSvc *service.ValidationService) *VehicleHandler {
	return &VehicleHandler{
		validationSvc: validationSvc,
		validate:      validator.New(),
	}
}

// Validate checks a vehicle description and returns a validation verdict.
// Malformed input is the only hard failure; unknown vehicles still get a
// verdict with advisory bounds.
func (h *VehicleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ValidateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request",
			"Request body must be JSON with string brand/model and integer year")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	verdict := h.validationSvc.Validate(ctx, req.Brand, req.Model, req.Year)
	writeJSON(w, http.StatusOK, verdict)
}

// YearRange resolves the production-year range for brand/model query params,
// for UIs that want to show the range before the user commits a year.
func (h *VehicleHandler) YearRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brand := r.URL.Query().Get("brand")
	mdl := r.URL.Query().Get("model")
	if brand == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "Query parameter 'brand' is required")
		return
	}

	resolvedBrand, resolvedModel, rng := h.validationSvc.ResolveYearRange(ctx, brand, mdl)
	writeJSON(w, http.StatusOK, model.YearRangeResponse{
		Brand:     resolvedBrand,
		Model:     resolvedModel,
		YearRange: rng,
	})
}

// ClearCache drops all cached year ranges. Intended for tests and ops.
func (h *VehicleHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	cleared := h.validationSvc.ClearCache()
	writeJSON(w, http.StatusOK, model.CacheClearResponse{EntriesCleared: cleared})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
