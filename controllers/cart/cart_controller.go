package cartController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/services"
)

var validate = validator.New()

type Controller struct {
	Cart *services.CartService
}

type addToCartRequest struct {
	ProductId string `json:"productId" validate:"required"`
	UnitId    string `json:"unitId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *Controller) AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request addToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product id and unit id are required",
		})
	}

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	cart, err := h.Cart.AddItem(ctx, email, request.ProductId, request.UnitId, request.Quantity)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully added to cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": len(cart.Items),
		},
	})
}

// GetCart returns the priced view of the cart plus a running total over
// the lines that could be priced.
func (h *Controller) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	lines, err := h.Cart.View(ctx, email)
	if err != nil {
		return responses.Error(c, err)
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.Resolvable {
			total = total.Add(decimal.NewFromFloat(line.Subtotal))
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched cart items",
		Result: &fiber.Map{
			"cartItems": lines,
			"cartCount": len(lines),
			"total":     total.Round(2).InexactFloat64(),
		},
	})
}

type removeFromCartRequest struct {
	UnitId string `json:"unitId" validate:"required"`
}

func (h *Controller) RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request removeFromCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unit id is required",
		})
	}

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	cart, err := h.Cart.RemoveItem(ctx, email, request.UnitId)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully removed from cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": len(cart.Items),
		},
	})
}
