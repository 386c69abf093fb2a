package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
)

// JWTIssuer issues and validates HS256 signed bearer tokens
type JWTIssuer struct {
	secret       []byte
	expiry       time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a new JWTIssuer.
// expireMinutes controls how far ahead of issuance tokens expire.
func NewJWTIssuer(secret string, expireMinutes int, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		expiry:       time.Duration(expireMinutes) * time.Minute,
		timeProvider: timeProvider,
	}
}

// Issue produces a signed token with the subject and expiry claims
func (i *JWTIssuer) Issue(subject string) (string, error) {
	now := i.timeProvider.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(now.Add(i.expiry)),
		"iat": jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the subject claim
func (i *JWTIssuer) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.ErrTokenExpired
		}
		return "", errs.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errs.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errs.ErrTokenInvalid
	}
	return subject, nil
}
