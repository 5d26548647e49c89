package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/Shahriar1638/Biznest-sub001/controllers/cart"
)

func CartRoutes(app *fiber.App, auth, customerOnly fiber.Handler, h *cartController.Controller) {
	app.Post("/api/add-to-cart", auth, customerOnly, h.AddToCart)
	app.Get("/api/fetchCartItems", auth, customerOnly, h.GetCart)
	app.Post("/api/remove-from-cart", auth, customerOnly, h.RemoveFromCart)
}
