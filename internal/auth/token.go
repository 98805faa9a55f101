package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Codec signs and verifies the access tokens handed out on profile upsert.
// Tokens are stateless: validity is signature plus expiry, nothing is stored.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), ttl: TokenTTL}
}

// Sign issues a token binding the given email to an expiry ttl from now.
func (c *Codec) Sign(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(c.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the subject email.
func (c *Codec) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}
