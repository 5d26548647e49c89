package routes

import (
	"github.com/gofiber/fiber/v2"

	adminController "github.com/Shahriar1638/Biznest-sub001/controllers/admin"
)

func AdminRoutes(app *fiber.App, auth, adminOnly fiber.Handler, h *adminController.Controller) {
	app.Get("/api/admin/pending-products", auth, adminOnly, h.PendingProducts)
	app.Post("/api/admin/moderate-product", auth, adminOnly, h.ModerateProduct)
	app.Post("/api/admin/set-ban", auth, adminOnly, h.SetBan)
}
