package auth

import (
	"time"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session roles
const (
	RoleAdmin  = "admin"
	RoleParent = "parent"
)

const sessionCookie = "session_token"

// DailyPassword derives the admin password from the wall-clock date:
// two-digit day followed by two-digit month. Nothing is stored; the password
// rotates at midnight.
func DailyPassword(now time.Time) string {
	return now.Format("0201")
}

// SessionClaims is the signed session state. Phone is set only for parent
// sessions and scopes every query that session runs.
type SessionClaims struct {
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

func sessionSecret() []byte {
	return []byte(config.AppConfig.SessionSecret)
}

// GenerateSessionToken signs a session for the given role. Parent sessions
// carry the phone number; admin sessions leave it empty.
func GenerateSessionToken(role, phone string) (string, error) {
	claims := SessionClaims{
		Role:  role,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ctc-portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ValidateSessionToken parses and verifies a session token
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
