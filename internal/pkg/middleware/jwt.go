package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/irakoze/inanga/internal/pkg/jwt"
	"github.com/irakoze/inanga/internal/pkg/models"
	"github.com/irakoze/inanga/internal/utils"
)

// JWTAuthMiddleware creates a middleware for admin JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			adminID, ok := (*claims)["admin_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing admin_id claim")
			}

			username, ok := (*claims)["username"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing username claim")
			}

			c.Set("admin_id", fmt.Sprintf("%v", adminID))
			c.Set("admin_username", fmt.Sprintf("%v", username))

			return next(c)
		}
	}
}
