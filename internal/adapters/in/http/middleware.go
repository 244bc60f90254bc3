package http

import (
	"log/slog"
	"net/http"
	"strings"

	"opsboard/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where BearerAuth stores the verified principal on
// the echo context.
const principalContextKey = "principal"

// BearerAuth returns middleware that verifies the Authorization bearer token
// with the identity provider before letting a request through. Requests with
// a missing, malformed, or rejected token get 401; the verified principal is
// stored on the context for handlers that want it.
func BearerAuth(verifier ports.IdentityVerifier, logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "auth_middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			principal, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				log.WarnContext(ctx.Request().Context(), "Token verification failed", "error", err)
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// PrincipalFrom returns the principal BearerAuth stored on the context.
// The second return is false when the request did not pass through the
// middleware.
func PrincipalFrom(ctx echo.Context) (ports.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(ports.Principal)
	return principal, ok
}
