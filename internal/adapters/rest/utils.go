package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// WriteJSONError sends a JSON response with an "error" field and the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteValidationError sends a 400 with the per-field error list.
func WriteValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	fields := make([]FieldErrorResponse, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		fields = append(fields, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	RespondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithDomainError maps the domain error taxonomy onto HTTP statuses.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	if verr, ok := domain.AsValidationError(err); ok {
		WriteValidationError(w, verr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrTokenInvalid):
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, "operation not allowed")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		WriteJSONError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrEmailInUse):
		WriteJSONError(w, http.StatusConflict, "email already in use")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// GetLimitOrDefault reads the limit query parameter, falling back to the
// search default. Non-numeric and non-positive values are rejected.
func GetLimitOrDefault(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	limit := domain.DefaultLimit
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return 0, errors.New("limit must be a positive integer")
		}
	}
	return limit, nil
}

// GetOffsetOrDefault reads the offset query parameter. An explicit zero is
// valid and preserved.
func GetOffsetOrDefault(r *http.Request) (int, error) {
	offsetStr := r.URL.Query().Get("offset")
	offset := domain.DefaultOffset
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, errors.New("offset must be a non-negative integer")
		}
	}
	return offset, nil
}
