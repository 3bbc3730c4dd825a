// Package auth implements the security core of the board: password hashing,
// signed session tokens, the cookie that carries them, and the ownership
// checks guarding mutations.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"postboard/internal/common"
)

// Claims is the session token's claim set. Subject carries the user ID and
// ID (jti) identifies the individual token for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens (HS256 JWTs).
// The signing key is fixed at construction and never rotated mid-process;
// rotating the key means constructing a new service, which invalidates
// every token signed under the old one.
type TokenService struct {
	secretKey []byte
	validity  time.Duration
	leeway    time.Duration
}

func NewTokenService(secretKey []byte, validity, leeway time.Duration) *TokenService {
	return &TokenService{
		secretKey: secretKey,
		validity:  validity,
		leeway:    leeway,
	}
}

// Validity returns the configured token lifetime.
func (s *TokenService) Validity() time.Duration {
	return s.validity
}

// Issue creates a token for the given subject with issued-at = now and
// expires-at = now + the configured lifetime.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks structure, then signature, then expiry, and reports the
// first failure as common.ErrTokenMalformed, common.ErrInvalidToken or
// common.ErrTokenExpired. The expiry comparison tolerates the configured
// leeway to absorb clock drift between issuing and verifying processes.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.leeway > 0 {
		options = append(options, jwt.WithLeeway(s.leeway))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, options...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			// Signature mismatch and everything else that survives a
			// structural decode is treated as tampering.
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
