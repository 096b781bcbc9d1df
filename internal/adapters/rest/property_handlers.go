package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contracts"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	searchUC     usecases_port.SearchPropertiesUseCase
	getDetailsUC usecases_port.GetPropertyDetailsUseCase
	createUC     usecases_port.CreatePropertyUseCase
	updateUC     usecases_port.UpdatePropertyUseCase
	deleteUC     usecases_port.DeletePropertyUseCase

	rejectInvertedRanges bool
}

func NewPropertyHandler(
	searchUC usecases_port.SearchPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	rejectInvertedRanges bool,
) *PropertyHandler {
	return &PropertyHandler{
		searchUC:             searchUC,
		getDetailsUC:         getDetailsUC,
		createUC:             createUC,
		updateUC:             updateUC,
		deleteUC:             deleteUC,
		rejectInvertedRanges: rejectInvertedRanges,
	}
}

// SearchProperties handles GET /api/v1/properties.
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseSearchFilters(r.URL.Query(), h.rejectInvertedRanges)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	result, err := h.searchUC.Execute(r.Context(), filter)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPaginatedPropertiesResponse(result))
}

// GetPropertyDetails handles GET /api/v1/properties/{propertyID}. It is
// public; an authenticated viewer is recorded for view statistics.
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	var viewerID *uuid.UUID
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		viewerID = &claims.UserID
	}

	details, err := h.getDetailsUC.Execute(r.Context(), propertyID, viewerID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPropertyDetailsResponse(details))
}

// CreateProperty handles POST /api/v1/properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := decodePropertyRequest(w, r, contracts.CreatePropertyRequest)
	if !ok {
		return
	}

	property, err := h.createUC.Execute(r.Context(), *claims, req.ToDraft())
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, newPropertyFields(*property))
}

// UpdateProperty handles PUT /api/v1/properties/{propertyID}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	req, ok := decodePropertyRequest(w, r, contracts.UpdatePropertyRequest)
	if !ok {
		return
	}

	property, err := h.updateUC.Execute(r.Context(), *claims, propertyID, req.ToDraft())
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, newPropertyFields(*property))
}

// DeleteProperty handles DELETE /api/v1/properties/{propertyID}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), *claims, propertyID); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodePropertyRequest reads the body, checks it against the JSON schema
// contract and unmarshals it. Returns ok=false after writing the error
// response.
func decodePropertyRequest(w http.ResponseWriter, r *http.Request, contract string) (PropertyRequest, bool) {
	var req PropertyRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return req, false
	}

	if err := contracts.ValidateRequest(contract, contracts.CurrentVersion, body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return req, false
	}

	if req.Status != nil && !domain.IsValidStatus(*req.Status) {
		WriteJSONError(w, http.StatusBadRequest, "Unknown property status")
		return req, false
	}

	return req, true
}
