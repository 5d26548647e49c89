package middlewares

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

// Locals keys set by Auth for downstream handlers.
const (
	LocalEmail = "email"
	LocalToken = "token"
)

// Auth verifies the bearer token, rejects revoked tokens, and stores the
// decoded email claim in Locals.
func Auth(jwtSecret string, sessions stores.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "No auth token, access denied")
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return unauthorized(c, "Invalid authorization header format")
		}
		tokenString := bearerToken[1]

		claims := &jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "Token verification failed, access denied")
		}

		email, ok := (*claims)["email"].(string)
		if !ok || email == "" {
			return unauthorized(c, "Email not found in token")
		}

		revoked, err := sessions.IsRevoked(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error checking token state",
			})
		}
		if revoked {
			return unauthorized(c, "Token has been revoked")
		}

		c.Locals(LocalEmail, email)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}
