package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contracts"
	usecases_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port/usecases_port"
)

type AuthHandler struct {
	registerUC       usecases_port.RegisterUserUseCase
	loginUC          usecases_port.LoginUserUseCase
	getCurrentUserUC usecases_port.GetCurrentUserUseCase
}

func NewAuthHandler(
	registerUC usecases_port.RegisterUserUseCase,
	loginUC usecases_port.LoginUserUseCase,
	getCurrentUserUC usecases_port.GetCurrentUserUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest(contracts.RegisterUserRequest, contracts.CurrentVersion, body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}

	user, token, err := h.registerUC.Execute(r.Context(), req.Email, req.Password, req.Name, req.Role, phone)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest(contracts.LoginUserRequest, contracts.CurrentVersion, body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}

// GetCurrentUser handles GET /api/v1/auth/me.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.getCurrentUserUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		RespondWithDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewUserResponse(user))
}
