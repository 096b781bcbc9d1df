package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contracts"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type InquiryHandler struct {
	createUC       usecases_port.CreateInquiryUseCase
	getSentUC      usecases_port.GetSentInquiriesUseCase
	getReceivedUC  usecases_port.GetReceivedInquiriesUseCase
	updateStatusUC usecases_port.UpdateInquiryStatusUseCase
}

func NewInquiryHandler(
	createUC usecases_port.CreateInquiryUseCase,
	getSentUC usecases_port.GetSentInquiriesUseCase,
	getReceivedUC usecases_port.GetReceivedInquiriesUseCase,
	updateStatusUC usecases_port.UpdateInquiryStatusUseCase,
) *InquiryHandler {
	return &InquiryHandler{
		createUC:       createUC,
		getSentUC:      getSentUC,
		getReceivedUC:  getReceivedUC,
		updateStatusUC: updateStatusUC,
	}
}

// CreateInquiry handles POST /api/v1/inquiries.
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest(contracts.CreateInquiryRequest, contracts.CurrentVersion, body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateInquiryRequestBody
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	inquiry, err := h.createUC.Execute(r.Context(), claims.UserID, propertyID, req.Message)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewInquiryResponse(inquiry))
}

// GetSentInquiries handles GET /api/v1/inquiries/sent.
func (h *InquiryHandler) GetSentInquiries(w http.ResponseWriter, r *http.Request) {
	h.listInquiries(w, r, h.getSentUC.Execute)
}

// GetReceivedInquiries handles GET /api/v1/inquiries/received.
func (h *InquiryHandler) GetReceivedInquiries(w http.ResponseWriter, r *http.Request) {
	h.listInquiries(w, r, h.getReceivedUC.Execute)
}

func (h *InquiryHandler) listInquiries(
	w http.ResponseWriter,
	r *http.Request,
	execute func(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error),
) {
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

	result, err := execute(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPaginatedInquiriesResponse(result))
}

// UpdateInquiryStatus handles PUT /api/v1/inquiries/{inquiryID}/status.
func (h *InquiryHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	inquiryID, err := uuid.Parse(chi.URLParam(r, "inquiryID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid inquiry ID format")
		return
	}

	var req UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.updateStatusUC.Execute(r.Context(), claims.UserID, inquiryID, req.Status); err != nil {
		RespondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
