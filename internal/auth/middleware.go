package auth

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
)

// IdentityContextKey is the echo context key holding the resolved *model.Identity.
// echojwt on the API group writes to the same key.
const IdentityContextKey = "identity"

// SessionMiddleware resolves the identity for every request and never blocks it.
func SessionMiddleware(resolver *Resolver, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			identity, err := resolver.Resolve(req.Context(), req)
			if err != nil {
				// bare sentinel means no credentials were sent at all
				if err != apperrors.ErrNotAuthenticated {
					log.Debug("session not resolved", zap.Error(err))
				}
				return next(c)
			}
			c.Set(IdentityContextKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored on the context, or nil for guests.
func IdentityFrom(c echo.Context) *model.Identity {
	identity, _ := c.Get(IdentityContextKey).(*model.Identity)
	return identity
}
