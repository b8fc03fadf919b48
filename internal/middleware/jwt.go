// Package middleware contains reusable HTTP middleware: the JWT session
// guard, the Redis response cache and the Redis token-bucket rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject claim into the request context. The
// provided secret must match the one used when issuing tokens. This
// middleware wraps every protected route so that handlers can access the
// authenticated identity via `c.Get("user_id")` instead of relying on any
// ambient session state.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "you need to login first"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret; reject any other signing
			// method so an attacker cannot downgrade to "none".
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			// Store the subject (user ID) in the context for handlers and
			// downstream middleware. Type assertions are left to consumers.
			c.Set("user_id", claims["sub"])
			return next(c)
		}
	}
}
