package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenTTL = 12 * time.Hour

// SessionClaims is the console's own token. It carries the operator's
// identity and role plus the upstream venue-API token, so one console
// credential is enough to act against both surfaces.
type SessionClaims struct {
	UserID     string `json:"uid"`
	Username   string `json:"uname"`
	Role       Role   `json:"role"`
	VenueToken string `json:"vtok"`
	jwt.RegisteredClaims
}

// SignSessionToken signs a console session token.
func SignSessionToken(secret, userID, username string, role Role, venueToken string) (string, error) {
	claims := SessionClaims{
		UserID:     userID,
		Username:   username,
		Role:       role,
		VenueToken: venueToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "operator",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses and verifies a console session token.
func ParseSessionToken(secret string, tokenString string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if _, err := ParseRole(string(claims.Role)); err != nil {
		return nil, err
	}
	return claims, nil
}
