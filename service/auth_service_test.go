// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"go-taskboard-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(userID string, ttl time.Duration) (*model.RefreshToken, error) {
	args := m.Called(userID, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *mockTokenRepo) FindActive(token string) (*model.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *mockTokenRepo) DeleteByToken(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}
func (m *mockTokenRepo) Rotate(oldToken, userID string, ttl time.Duration) (*model.RefreshToken, error) {
	args := m.Called(oldToken, userID, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *mockTokenRepo) DeleteExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(users *mockUserRepo, tokens *mockTokenRepo) *AuthService {
	hasher := NewPasswordHasher()
	issuer := NewTokenIssuer("test-secret", 15*time.Minute)
	return NewAuthService(users, tokens, hasher, issuer, 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	req := model.RegisterRequest{
		Username:       "alice",
		Email:          "alice@x.com",
		Password:       "p@ssw0rd1",
		PasswordRepeat: "p@ssw0rd1",
	}

	t.Run("success", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByUsername", "alice").Return(nil, sql.ErrNoRows).Once()
		users.On("GetUserByEmail", "alice@x.com").Return(nil, sql.ErrNoRows).Once()
		users.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
			return u.ID != "" && u.Username == "alice" && u.Password != "p@ssw0rd1"
		})).Return(nil).Once()

		svc := newTestAuthService(users, tokens)
		user, err := svc.Register(req)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "p@ssw0rd1", user.Password)
		users.AssertExpectations(t)
	})

	t.Run("password mismatch", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		svc := newTestAuthService(users, tokens)

		mismatched := req
		mismatched.PasswordRepeat = "different"
		_, err := svc.Register(mismatched)

		assert.ErrorIs(t, err, ErrPasswordMismatch)
		users.AssertNotCalled(t, "CreateUser")
	})

	t.Run("username taken", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByUsername", "alice").Return(&model.User{ID: "u1", Username: "alice"}, nil).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Register(req)

		assert.ErrorIs(t, err, ErrUsernameTaken)
		users.AssertNotCalled(t, "CreateUser")
	})

	t.Run("email taken", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByUsername", "alice").Return(nil, sql.ErrNoRows).Once()
		users.On("GetUserByEmail", "alice@x.com").Return(&model.User{ID: "u1", Email: "alice@x.com"}, nil).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Register(req)

		assert.ErrorIs(t, err, ErrEmailTaken)
		users.AssertNotCalled(t, "CreateUser")
	})
}

func TestAuthService_Login(t *testing.T) {
	hasher := NewPasswordHasher()
	digest, err := hasher.Hash("p@ssw0rd1")
	if err != nil {
		t.Fatalf("could not hash fixture password: %v", err)
	}
	storedUser := &model.User{ID: "u1", Username: "alice", Email: "alice@x.com", Password: digest}

	t.Run("success", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByEmail", "alice@x.com").Return(storedUser, nil).Once()
		record := &model.RefreshToken{Token: "opaque-1", UserID: "u1", ExpiresAt: time.Now().Add(7 * 24 * time.Hour)}
		tokens.On("Create", "u1", 7*24*time.Hour).Return(record, nil).Once()

		svc := newTestAuthService(users, tokens)
		pair, err := svc.Login(model.LoginRequest{Email: "alice@x.com", Password: "p@ssw0rd1"})

		assert.NoError(t, err)
		assert.Equal(t, record, pair.RefreshToken)
		assert.True(t, pair.RefreshToken.ExpiresAt.After(time.Now()))

		// The issued access token must verify and resolve to the user.
		issuer := NewTokenIssuer("test-secret", 15*time.Minute)
		userID, err := issuer.VerifyAccessToken(pair.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "u1", userID)
		tokens.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByEmail", "alice@x.com").Return(storedUser, nil).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Login(model.LoginRequest{Email: "alice@x.com", Password: "wrong-password"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Create")
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		users.On("GetUserByEmail", "ghost@x.com").Return(nil, sql.ErrNoRows).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Login(model.LoginRequest{Email: "ghost@x.com", Password: "p@ssw0rd1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Create")
	})

	t.Run("corrupt stored hash", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		corruptUser := &model.User{ID: "u2", Email: "bob@x.com", Password: "garbage"}
		users.On("GetUserByEmail", "bob@x.com").Return(corruptUser, nil).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Login(model.LoginRequest{Email: "bob@x.com", Password: "p@ssw0rd1"})

		// The caller only ever sees an authentication failure.
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("active token rotates", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		oldRecord := &model.RefreshToken{Token: "old-token", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
		newRecord := &model.RefreshToken{Token: "new-token", UserID: "u1", ExpiresAt: time.Now().Add(7 * 24 * time.Hour)}
		tokens.On("FindActive", "old-token").Return(oldRecord, nil).Once()
		tokens.On("Rotate", "old-token", "u1", 7*24*time.Hour).Return(newRecord, nil).Once()

		svc := newTestAuthService(users, tokens)
		pair, err := svc.Refresh("old-token")

		assert.NoError(t, err)
		assert.NotEqual(t, "old-token", pair.RefreshToken.Token)
		assert.Equal(t, "u1", pair.RefreshToken.UserID)
		tokens.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		tokens.On("FindActive", "ghost-token").Return(nil, sql.ErrNoRows).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Refresh("ghost-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		tokens.AssertNotCalled(t, "Rotate")
	})

	t.Run("empty token", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)

		svc := newTestAuthService(users, tokens)
		_, err := svc.Refresh("")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		tokens.AssertNotCalled(t, "FindActive")
	})

	t.Run("lost rotation race", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		oldRecord := &model.RefreshToken{Token: "old-token", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
		tokens.On("FindActive", "old-token").Return(oldRecord, nil).Once()
		tokens.On("Rotate", "old-token", "u1", 7*24*time.Hour).Return(nil, sql.ErrNoRows).Once()

		svc := newTestAuthService(users, tokens)
		_, err := svc.Refresh("old-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("deletes the record", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		tokens.On("DeleteByToken", "some-token").Return(true, nil).Once()

		svc := newTestAuthService(users, tokens)
		svc.Logout("some-token")

		tokens.AssertExpectations(t)
	})

	t.Run("absent token is still success", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)
		tokens.On("DeleteByToken", "ghost-token").Return(false, nil).Once()

		svc := newTestAuthService(users, tokens)
		svc.Logout("ghost-token")

		tokens.AssertExpectations(t)
	})

	t.Run("empty token touches nothing", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockTokenRepo)

		svc := newTestAuthService(users, tokens)
		svc.Logout("")

		tokens.AssertNotCalled(t, "DeleteByToken")
	})
}
