package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo - claims readable from a session token without verifying it
type TokenInfo struct {
	IsJWT     bool
	Subject   string
	ExpiresAt time.Time
}

// InspectToken - decodes JWT claims for logging purposes
// The signature is not verified, opaque tokens return zero TokenInfo.
func InspectToken(token string) TokenInfo {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{IsJWT: true}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info
}
