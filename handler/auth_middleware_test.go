package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-taskboard-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthGuard(t *testing.T) {
	issuer := service.NewTokenIssuer("guard-secret", time.Minute)
	guard := NewAuthGuard(issuer)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value(UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	serve := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/board/all", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		guard.Middleware(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := serve("Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := service.NewTokenIssuer("other-secret", time.Minute)
		token, err := other.IssueAccessToken("user-1")
		require.NoError(t, err)

		rec := serve("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler with the user id", func(t *testing.T) {
		token, err := issuer.IssueAccessToken("user-42")
		require.NoError(t, err)

		rec := serve("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-42", seenUserID)
	})
}
