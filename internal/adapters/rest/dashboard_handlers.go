package rest

import (
	"net/http"

	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type DashboardHandler struct {
	statsUC usecases_port.GetDashboardStatsUseCase
}

func NewDashboardHandler(statsUC usecases_port.GetDashboardStatsUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

// GetDashboardStats handles GET /api/v1/dashboard/stats. The projection
// depends on the requester's role.
func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	stats, err := h.statsUC.Execute(r.Context(), claims)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewDashboardStatsResponse(stats))
}
