// file: repository/token_repository.go

package repository

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"go-taskboard-api/logger"
	"go-taskboard-api/model"
	"time"

	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for refresh token database operations.
type ITokenRepository interface {
	Create(userID string, ttl time.Duration) (*model.RefreshToken, error)
	FindActive(token string) (*model.RefreshToken, error)
	DeleteByToken(token string) (bool, error)
	Rotate(oldToken, userID string, ttl time.Duration) (*model.RefreshToken, error)
	DeleteExpired() (int64, error)
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// generateOpaqueToken returns a new cryptographically random token string.
func generateOpaqueToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// Create generates a fresh opaque token and persists it for the user.
func (r *TokenRepository) Create(userID string, ttl time.Duration) (*model.RefreshToken, error) {
	token, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	record := &model.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    record.UserID,
		"expires_at": record.ExpiresAt,
	})
	log.Info("Executing query to create a new refresh token")

	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3) RETURNING created_at`
	if err := r.DB.QueryRow(query, record.Token, record.UserID, record.ExpiresAt).Scan(&record.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to execute create refresh token query")
		return nil, err
	}
	return record, nil
}

// FindActive retrieves a refresh token record only if it exists and has not
// expired. An expired record behaves as absent (sql.ErrNoRows).
func (r *TokenRepository) FindActive(token string) (*model.RefreshToken, error) {
	record := &model.RefreshToken{}
	query := `SELECT token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1 AND expires_at > now()`
	err := r.DB.QueryRow(query, token).Scan(&record.Token, &record.UserID, &record.ExpiresAt, &record.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute find active refresh token query")
		}
		return nil, err // Return sql.ErrNoRows if absent or expired
	}
	return record, nil
}

// DeleteByToken removes the record if present and reports whether it
// existed. Deleting an absent token is not an error.
func (r *TokenRepository) DeleteByToken(token string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete refresh token query")
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Rotate atomically retires oldToken and issues a replacement for the same
// user. The conditional delete runs inside one transaction: of two
// concurrent rotations of the same token, exactly one sees a removed row;
// the other gets sql.ErrNoRows and no new record.
func (r *TokenRepository) Rotate(oldToken, userID string, ttl time.Duration) (*model.RefreshToken, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing transaction to rotate a refresh token")

	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM refresh_tokens WHERE token = $1 AND expires_at > now()`, oldToken)
	if err != nil {
		log.WithError(err).Error("Failed to execute conditional delete for token rotation")
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Already rotated out, revoked, or expired.
		return nil, sql.ErrNoRows
	}

	token, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}
	record := &model.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3) RETURNING created_at`
	if err := tx.QueryRow(query, record.Token, record.UserID, record.ExpiresAt).Scan(&record.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to insert replacement refresh token")
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit token rotation: %w", err)
	}
	return record, nil
}

// DeleteExpired purges records past their expiry. Correctness never depends
// on this; FindActive and Rotate enforce expiry on their own.
func (r *TokenRepository) DeleteExpired() (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM refresh_tokens WHERE expires_at <= now()`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete expired refresh tokens query")
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		logger.Log.WithField("purged", affected).Info("Purged expired refresh tokens")
	}
	return affected, nil
}
