package supportController

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/services"
)

var validate = validator.New()

type Controller struct {
	Support *services.SupportService
}

func pagination(c *fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

type createTicketRequest struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=low normal high"`
}

// CreateTicket opens a support ticket for the authenticated caller.
func (h *Controller) CreateTicket(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request createTicketRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Name, subject and message are required")
	}

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	msg := &models.ContactMessage{
		Email:    email,
		Name:     request.Name,
		Subject:  request.Subject,
		Message:  request.Message,
		Priority: request.Priority,
	}

	created, err := h.Support.Create(ctx, msg)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Ticket created successfully",
		Result:  &fiber.Map{"ticketId": created.TicketId},
	})
}

// ListTickets is the admin view, optionally filtered by status.
func (h *Controller) ListTickets(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, limit := pagination(c)
	status := c.Query("status", "")

	messages, total, err := h.Support.ListForAdmin(ctx, status, page, limit)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched tickets",
		Result: &fiber.Map{
			"currentPage":  page,
			"totalTickets": total,
			"tickets":      messages,
		},
	})
}

// MyTickets lists the caller's own tickets.
func (h *Controller) MyTickets(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	page, limit := pagination(c)

	messages, total, err := h.Support.ListForClient(ctx, email, page, limit)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched tickets",
		Result: &fiber.Map{
			"currentPage":  page,
			"totalTickets": total,
			"tickets":      messages,
		},
	})
}

type replyTicketRequest struct {
	TicketId string `json:"ticketId" validate:"required"`
	Reply    string `json:"reply" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=in-progress resolved"`
}

// ReplyTicket attaches an admin reply and advances the ticket status.
func (h *Controller) ReplyTicket(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request replyTicketRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Ticket id, reply and a valid status are required")
	}

	msg, err := h.Support.Reply(ctx, request.TicketId, request.Reply, request.Status)
	if err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reply saved",
		Result: &fiber.Map{
			"ticketId": msg.TicketId,
			"status":   msg.Status,
		},
	})
}

type markReadRequest struct {
	TicketId string `json:"ticketId" validate:"required"`
}

// MarkTicketRead flips the client-side read flag.
func (h *Controller) MarkTicketRead(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request markReadRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&request); err != nil {
		return badRequest(c, "Ticket id is required")
	}

	if err := h.Support.MarkRead(ctx, request.TicketId); err != nil {
		return responses.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Ticket marked as read",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}
