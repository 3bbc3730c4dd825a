package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/internal/common"
	"postboard/internal/logging"
)

// ContextIdentityKey is the gin context key under which the authenticated
// identity is stored.
const ContextIdentityKey = "auth.identity"

// Identity is the resolved authenticated caller.
type Identity struct {
	UserID   string
	Username string
}

// SubjectResolver resolves a verified token subject to a live account.
// A failed lookup invalidates the token at authorization time, which is how
// deleting a user kills every session it ever had.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, userID string) (string, error)
}

// Guard resolves the authenticated identity for a request and enforces
// ownership on mutations. Every authentication-stage failure collapses to a
// single 401 before it reaches a handler; the specific cause is only logged.
type Guard struct {
	tokens   *TokenService
	carrier  *SessionCarrier
	denylist Denylist
	resolver SubjectResolver
	logger   logging.Logger
}

func NewGuard(tokens *TokenService, carrier *SessionCarrier, denylist Denylist, resolver SubjectResolver, logger logging.Logger) *Guard {
	return &Guard{
		tokens:   tokens,
		carrier:  carrier,
		denylist: denylist,
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth is middleware for endpoints that demand a valid session.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := g.authenticate(c)
		if err != nil {
			g.logAuthFailure(c, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHENTICATED",
				"message": "authentication required",
			})
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// OptionalAuth resolves an identity when a valid session is present but
// lets anonymous requests through. Used on public reads.
func (g *Guard) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := g.authenticate(c); err == nil {
			c.Set(ContextIdentityKey, identity)
		}
		c.Next()
	}
}

func (g *Guard) authenticate(c *gin.Context) (*Identity, error) {
	tokenString, ok := g.carrier.Extract(c.Request)
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	claims, err := g.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := g.denylist.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		// fail closed when the deny-list backend is unreachable
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	username, err := g.resolver.ResolveSubject(c.Request.Context(), claims.Subject)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return &Identity{UserID: claims.Subject, Username: username}, nil
}

// RevokeToken deny-lists the token carried by the request until its natural
// expiry. A request without a verifiable token has nothing to revoke and is
// not an error.
func (g *Guard) RevokeToken(c *gin.Context) error {
	tokenString, ok := g.carrier.Extract(c.Request)
	if !ok {
		return nil
	}

	claims, err := g.tokens.Verify(tokenString)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time) + g.tokens.leeway
	return g.denylist.Revoke(c.Request.Context(), claims.ID, ttl)
}

func (g *Guard) logAuthFailure(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenMalformed):
		// tampering suspect, worth alerting on
		g.logger.Warn(ctx, "rejected session token", "reason", err.Error(), "path", c.FullPath())
	case errors.Is(err, common.ErrorInternal):
		g.logger.Error(ctx, "authentication backend failure", "path", c.FullPath())
	default:
		// absent cookie, expired or revoked token, deleted user
		g.logger.Debug(ctx, "unauthenticated request", "reason", err.Error(), "path", c.FullPath())
	}
}

// IdentityFromContext returns the identity stored by RequireAuth or
// OptionalAuth, if any.
func IdentityFromContext(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(ContextIdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}

// CanMutate is the ownership predicate: a mutation is allowed iff the
// identity matches the record's owner. There is no role hierarchy and no
// admin override.
func CanMutate(identity *Identity, ownerID string) bool {
	return identity != nil && identity.UserID == ownerID
}
