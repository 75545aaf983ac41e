// Package middleware contains the echo middleware specific to the HTTP API.
package middleware

import (
	"slices"
	"strings"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/delivery/http/response"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates operator bearer tokens on the admin surface.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the operator on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Subject == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		deliverycontext.SetOperator(c, claims.Subject, claims.Roles)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(deliverycontext.GetRoles(c), requiredRole.String()) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(),
					"Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
