package service

import (
	"database/sql"
	"errors"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"
	"go-taskboard-api/repository"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrUsernameTaken       = errors.New("username is already in use")
	ErrEmailTaken          = errors.New("email is already in use")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// AuthService orchestrates register, login, refresh and logout over the
// user directory and the refresh token store. All session state lives in
// the store; the service itself holds none.
type AuthService struct {
	userRepo   repository.IUserRepository
	tokenRepo  repository.ITokenRepository
	hasher     *PasswordHasher
	issuer     *TokenIssuer
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repository.IUserRepository,
	tokenRepo repository.ITokenRepository,
	hasher *PasswordHasher,
	issuer *TokenIssuer,
	refreshTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		hasher:     hasher,
		issuer:     issuer,
		refreshTTL: refreshTTL,
	}
}

// Register creates a user after checking the password confirmation and the
// uniqueness of username and email.
func (s *AuthService) Register(req model.RegisterRequest) (*model.User, error) {
	if req.Password != req.PasswordRepeat {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh access/refresh pair.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req model.LoginRequest) (*model.TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(req.Password, user.Password)
	if err != nil {
		// Unreadable stored hash: fatal for this account, but the caller
		// only ever sees an authentication failure.
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Stored password hash is corrupt")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(user.ID, func() (*model.RefreshToken, error) {
		return s.tokenRepo.Create(user.ID, s.refreshTTL)
	})
}

// Refresh rotates the presented refresh token and issues a new pair bound
// to the same user. Reuse of an already rotated token fails: the rotation
// inside the store is atomic, so of two concurrent refreshes with the same
// token only one can win.
func (s *AuthService) Refresh(presentedToken string) (*model.TokenPair, error) {
	if presentedToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	record, err := s.tokenRepo.FindActive(presentedToken)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issuePair(record.UserID, func() (*model.RefreshToken, error) {
		rotated, err := s.tokenRepo.Rotate(presentedToken, record.UserID, s.refreshTTL)
		if err == sql.ErrNoRows {
			// Lost the race against a concurrent refresh or logout.
			return nil, ErrInvalidRefreshToken
		}
		return rotated, err
	})
}

// Logout ends the session for the presented token. It is total: an unknown
// or absent token still satisfies the caller's intent, and storage faults
// are logged rather than surfaced.
func (s *AuthService) Logout(presentedToken string) {
	if presentedToken == "" {
		return
	}
	existed, err := s.tokenRepo.DeleteByToken(presentedToken)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to delete refresh token on logout")
		return
	}
	if !existed {
		logger.Log.Info("Logout presented an unknown refresh token")
	}
}

func (s *AuthService) issuePair(userID string, makeRefresh func() (*model.RefreshToken, error)) (*model.TokenPair, error) {
	refresh, err := makeRefresh()
	if err != nil {
		return nil, err
	}
	access, err := s.issuer.IssueAccessToken(userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to issue access token")
		return nil, err
	}
	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
