package checkoutController

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/services"
)

var validate = validator.New()

type Controller struct {
	Checkout *services.CheckoutService
	// KeyId is returned to clients so they can open the processor's
	// payment widget against the created order.
	KeyId string
}

// InitiateCheckout snapshots the cart into a pending payment record and
// registers the charge with the processor.
func (h *Controller) InitiateCheckout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	record, err := h.Checkout.Checkout(ctx, email)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Checkout initiated",
		Result: &fiber.Map{
			"recordId":         record.Id.Hex(),
			"processorOrderId": record.ProcessorOrderId,
			"calculatedTotal":  record.CalculatedTotal,
			"shippingFee":      record.ShippingFee,
			"finalAmount":      record.FinalAmount,
			"currency":         record.Currency,
			"key_id":           h.KeyId,
		},
	})
}

type confirmPaymentRequest struct {
	RecordId  string `json:"recordId" validate:"required"`
	PaymentId string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// ConfirmPayment verifies the processor signature and finalizes the charge.
func (h *Controller) ConfirmPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request confirmPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Record id, payment id and signature are required")
	}

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	record, err := h.Checkout.Confirm(ctx, email, request.RecordId, request.PaymentId, request.Signature)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment verified successfully",
		Result: &fiber.Map{
			"recordId":  request.RecordId,
			"paymentId": request.PaymentId,
			"status":    record.Status,
		},
	})
}

type paymentOutcomeRequest struct {
	RecordId string `json:"recordId" validate:"required"`
	Outcome  string `json:"outcome" validate:"required,oneof=requires_action failed"`
}

// PaymentOutcome records a processor-reported non-success outcome. The
// cart is left intact for retry.
func (h *Controller) PaymentOutcome(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request paymentOutcomeRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Record id and a known outcome are required")
	}

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	record, err := h.Checkout.RecordOutcome(ctx, email, request.RecordId, request.Outcome)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment outcome recorded",
		Result: &fiber.Map{
			"recordId": request.RecordId,
			"status":   record.Status,
		},
	})
}

// GetPayments lists the caller's payment records, newest first.
func (h *Controller) GetPayments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}

	records, total, err := h.Checkout.History(ctx, email, page, limit)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched payments",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPayments": total,
			"payments":      records,
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}
