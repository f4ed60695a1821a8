package handler

import (
	"encoding/json"
	"errors"
	"go-taskboard-api/common"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"
	"go-taskboard-api/service"
	"net/http"
	"time"
)

type AuthHandler struct {
	service      *service.AuthService
	cookieSecure bool
}

func NewAuthHandler(service *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: service, cookieSecure: cookieSecure}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "Registration payload"
// @Success      201 {object} model.User
// @Failure      400 {object} common.AppError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	logger.Log.WithField("username", req.Username).Info("Register request received")

	user, err := h.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailTaken):
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// Login godoc
// @Summary      Authenticate and receive a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      201 {object} map[string]string
// @Failure      401 {object} common.AppError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	pair, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"accessToken": pair.AccessToken})
	return nil
}

// Refresh godoc
// @Summary      Rotate the refresh token and receive a new access token
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      401 {object} common.AppError
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	token, ok := extractCookie(r, RefreshTokenCookie)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Refresh token cookie is missing", nil)
	}

	pair, err := h.service.Refresh(token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not refresh session", err)
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"accessToken": pair.AccessToken})
	return nil
}

// Logout godoc
// @Summary      End the current session
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if token, ok := extractCookie(r, RefreshTokenCookie); ok {
		h.service.Logout(token)
	}

	h.clearRefreshCookie(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	return nil
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, record *model.RefreshToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    record.Token,
		Path:     "/",
		Expires:  record.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
