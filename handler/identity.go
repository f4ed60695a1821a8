// file: handler/identity.go

package handler

import (
	"go-taskboard-api/common"
	"go-taskboard-api/model"
	"go-taskboard-api/service"
	"net/http"
)

// RefreshTokenCookie is the cookie the refresh token travels in.
const RefreshTokenCookie = "refreshtoken"

// extractCookie returns the named cookie's value, or false when the cookie
// is absent.
func extractCookie(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// resolveActingUser attributes the request to a user via the refresh token
// cookie, mirroring how every board mutation records who performed it.
func resolveActingUser(users *service.UserService, r *http.Request) (*model.User, *common.AppError) {
	token, ok := extractCookie(r, RefreshTokenCookie)
	if !ok {
		return nil, common.NewAppError(http.StatusBadRequest, "Could not attribute request to a user", nil)
	}

	userID, err := users.FindUserByToken(token)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Could not attribute request to a user", nil)
	}

	user, err := users.FindUserByID(userID)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Could not attribute request to a user", nil)
	}
	return user, nil
}
