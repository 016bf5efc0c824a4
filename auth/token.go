package auth

import (
	"time"

	"hackreg/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload. The token is the only session
// state: nothing is persisted server-side, so validity is entirely
// signature plus expiry.
type Claims struct {
	Email    string      `json:"email,omitempty"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	TeamID   uint        `json:"team_id,omitempty"`
	TeamName string      `json:"team_name,omitempty"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token carrying the given identity, valid for ttl.
func Sign(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse verifies signature and expiry and returns the decoded claims.
func Parse(raw string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
