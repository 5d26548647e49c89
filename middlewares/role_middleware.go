package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

// RequireRole gates a route to accounts holding the given role. An absent
// account or a role mismatch is a policy decision (403); a store fault is an
// infrastructure failure (500). The two must not be conflated.
func RequireRole(users stores.UserStore, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(LocalEmail).(string)
		if !ok || email == "" {
			return unauthorized(c, "Email not found in token")
		}

		user, err := users.FindByEmail(c.Context(), email)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				return forbidden(c)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error verifying account role",
			})
		}

		if user.Banned || user.Role != role {
			return forbidden(c)
		}

		return c.Next()
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
		Status:  fiber.StatusForbidden,
		Message: "Access denied for this role",
	})
}
