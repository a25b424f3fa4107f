package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Mobile clients stay signed in for a month.
const tokenTTL = 30 * 24 * time.Hour

const tokenIssuer = "hydraping"

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	UserID uint64 `json:"uid"`
	jwt.RegisteredClaims
}

type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (j *JWT) Sign(userID uint64) (string, error) {
	now := time.Now()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
}

// Verify returns the user id carried by a token, or ErrInvalidToken
// for anything malformed, expired, or signed the wrong way.
func (j *JWT) Verify(token string) (uint64, error) {
	var c claims
	t, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil || !t.Valid || c.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return c.UserID, nil
}
