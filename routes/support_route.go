package routes

import (
	"github.com/gofiber/fiber/v2"

	supportController "github.com/Shahriar1638/Biznest-sub001/controllers/support"
)

func SupportRoutes(app *fiber.App, auth, adminOnly fiber.Handler, h *supportController.Controller) {
	app.Post("/api/support/create", auth, h.CreateTicket)
	app.Get("/api/support/my-tickets", auth, h.MyTickets)
	app.Post("/api/support/mark-read", auth, h.MarkTicketRead)

	app.Get("/api/admin/tickets", auth, adminOnly, h.ListTickets)
	app.Post("/api/admin/reply-ticket", auth, adminOnly, h.ReplyTicket)
}
