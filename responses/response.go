package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Shahriar1638/Biznest-sub001/services"
)

type ApiResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result"`
}

// Error writes the response for a service failure, mapping the error kind
// to a status code. Untyped errors surface as 500 with a generic message so
// store internals never leak to clients.
func Error(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var se *services.Error
	if errors.As(err, &se) {
		message = se.Message
		switch se.Kind {
		case services.KindValidation:
			status = fiber.StatusBadRequest
		case services.KindForbidden:
			status = fiber.StatusForbidden
		case services.KindNotFound:
			status = fiber.StatusNotFound
		case services.KindPaymentDeclined:
			status = fiber.StatusPaymentRequired
		default:
			status = fiber.StatusInternalServerError
			message = "Internal server error"
		}
	}

	return c.Status(status).JSON(ApiResponse{
		Status:  status,
		Message: message,
		Result:  nil,
	})
}
