package auth

import "time"

// SessionClaims represents the claims carried in a session token. Tokens
// are PASETO v4.local, so claims are encrypted and unreadable without the
// server key.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`

	// Standard PASETO claims
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
}
