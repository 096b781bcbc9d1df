package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type NotificationHandler struct {
	listUC        usecases_port.GetNotificationsUseCase
	markReadUC    usecases_port.MarkNotificationReadUseCase
	markAllReadUC usecases_port.MarkAllNotificationsReadUseCase
}

func NewNotificationHandler(
	listUC usecases_port.GetNotificationsUseCase,
	markReadUC usecases_port.MarkNotificationReadUseCase,
	markAllReadUC usecases_port.MarkAllNotificationsReadUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
	}
}

// GetNotifications handles GET /api/v1/notifications.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
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

	RespondWithJSON(w, http.StatusOK, NewPaginatedNotificationsResponse(result))
}

// MarkNotificationRead handles PUT /api/v1/notifications/{notificationID}/read.
func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	if err := h.markReadUC.Execute(r.Context(), claims.UserID, notificationID); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read-all.
func (h *NotificationHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.markAllReadUC.Execute(r.Context(), claims.UserID); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
