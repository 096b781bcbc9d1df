package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func TestRespondWithDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"bad token", domain.ErrTokenInvalid, http.StatusUnauthorized},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"email in use", domain.ErrEmailInUse, http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("loading listing: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("pg exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondWithDomainError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestRespondWithDomainErrorValidation(t *testing.T) {
	verr := domain.NewValidationError()
	verr.Add("price_min", "must be a number")
	verr.Add("limit", "must be a positive integer")

	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, verr)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "price_min", body.Fields[0].Field)
	assert.Equal(t, "limit", body.Fields[1].Field)
}

func TestRespondWithDomainErrorDoesNotLeakInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, errors.New("pq: relation properties does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestGetLimitOrDefault(t *testing.T) {
	t.Run("absent uses default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		limit, err := GetLimitOrDefault(r)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultLimit, limit)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
		limit, err := GetLimitOrDefault(r)
		require.NoError(t, err)
		assert.Equal(t, 5, limit)
	})

	t.Run("zero is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?limit=0", nil)
		_, err := GetLimitOrDefault(r)
		assert.Error(t, err)
	})
}

func TestGetOffsetOrDefault(t *testing.T) {
	t.Run("explicit zero is kept", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?offset=0", nil)
		offset, err := GetOffsetOrDefault(r)
		require.NoError(t, err)
		assert.Equal(t, 0, offset)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?offset=-1", nil)
		_, err := GetOffsetOrDefault(r)
		assert.Error(t, err)
	})
}
