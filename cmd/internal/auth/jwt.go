package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "catering-admin"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthenticator checks the same credential pair as StaticAuthenticator
// but issues signed, expiring HS256 tokens.
type JWTAuthenticator struct {
	creds  Credentials
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTAuthenticator(creds Credentials, secret string, ttl time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{creds: creds, secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWTAuthenticator) Authenticate(username, password string) (string, error) {
	if !j.creds.matches(username, password) {
		return "", ErrInvalidCredentials
	}

	now := j.now()
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// Verify checks a token issued by Login. No route requires an admin token yet.
func (j *JWTAuthenticator) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}
