package adminController

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/services"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

var validate = validator.New()

type Controller struct {
	Moderation *services.ModerationService
	Users      stores.UserStore
	Log        zerolog.Logger
}

// PendingProducts lists listings awaiting a moderation decision.
func (h *Controller) PendingProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	products, total, err := h.Moderation.Pending(ctx, page, limit)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched pending products",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalProducts": total,
			"products":      products,
		},
	})
}

type moderateRequest struct {
	ProductId string `json:"productId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=released rejected"`
}

// ModerateProduct releases or rejects a listing.
func (h *Controller) ModerateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request moderateRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Product id and a released/rejected status are required")
	}

	adminEmail, _ := c.Locals(middlewares.LocalEmail).(string)
	if err := h.Moderation.SetStatus(ctx, adminEmail, request.ProductId, request.Status); err != nil {
		return responses.Error(c, err)
	}

	h.Log.Info().Str("productId", request.ProductId).Str("status", request.Status).
		Str("admin", adminEmail).Msg("product moderated")
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product status updated",
		Result: &fiber.Map{
			"productId": request.ProductId,
			"status":    request.Status,
		},
	})
}

type banRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Banned bool   `json:"banned"`
}

// SetBan flips the ban flag on an account. Accounts are never hard-deleted.
func (h *Controller) SetBan(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request banRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "A valid email is required")
	}

	if err := h.Users.SetBanned(ctx, request.Email, request.Banned); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update ban flag",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Ban flag updated",
		Result: &fiber.Map{
			"email":  request.Email,
			"banned": request.Banned,
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}
