package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type FavoriteHandler struct {
	addUC    usecases_port.AddFavoriteUseCase
	removeUC usecases_port.RemoveFavoriteUseCase
	listUC   usecases_port.GetFavoritesUseCase
	idsUC    usecases_port.GetFavoriteIDsUseCase
}

func NewFavoriteHandler(
	addUC usecases_port.AddFavoriteUseCase,
	removeUC usecases_port.RemoveFavoriteUseCase,
	listUC usecases_port.GetFavoritesUseCase,
	idsUC usecases_port.GetFavoriteIDsUseCase,
) *FavoriteHandler {
	return &FavoriteHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		idsUC:    idsUC,
	}
}

// AddFavorite handles POST /api/v1/favorites. Saving an already saved
// listing is a no-op.
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.addUC.Execute(r.Context(), claims.UserID, propertyID); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /api/v1/favorites/{propertyID}.
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.removeUC.Execute(r.Context(), claims.UserID, propertyID); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetFavorites handles GET /api/v1/favorites.
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.listUC.Execute(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPaginatedPropertiesResponse(result))
}

// GetFavoriteIDs handles GET /api/v1/favorites/ids, a light endpoint for
// heart toggles on list views.
func (h *FavoriteHandler) GetFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ids, err := h.idsUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	propertyIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		propertyIDs = append(propertyIDs, id.String())
	}

	RespondWithJSON(w, http.StatusOK, FavoriteIDsResponse{PropertyIDs: propertyIDs})
}
