// file: model/token.go

package model

import "time"

// RefreshToken holds a persisted refresh token record. The opaque token
// string is the record's key; it is never logged in full.
type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiry"`
	CreatedAt time.Time `json:"-"`
}

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken *RefreshToken `json:"refreshToken"`
}
