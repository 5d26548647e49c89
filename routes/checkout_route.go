package routes

import (
	"github.com/gofiber/fiber/v2"

	checkoutController "github.com/Shahriar1638/Biznest-sub001/controllers/checkout"
)

func CheckoutRoutes(app *fiber.App, auth, customerOnly fiber.Handler, h *checkoutController.Controller) {
	app.Post("/api/initiate-checkout", auth, customerOnly, h.InitiateCheckout)
	app.Post("/api/confirm-payment", auth, customerOnly, h.ConfirmPayment)
	app.Post("/api/payment-outcome", auth, customerOnly, h.PaymentOutcome)
	app.Get("/api/payments", auth, customerOnly, h.GetPayments)
}
