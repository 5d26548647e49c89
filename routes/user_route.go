package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/Shahriar1638/Biznest-sub001/controllers/user"
)

func UserRoute(app *fiber.App, auth, customerOnly fiber.Handler, h *userController.Controller) {
	app.Post("/api/signup", h.SignUp)
	app.Post("/api/signin", h.SignIn)
	app.Post("/api/signout", auth, h.SignOut)

	app.Get("/api/get-user-profile", auth, h.GetProfile)
	app.Post("/api/update-profile", auth, h.UpdateProfile)

	app.Post("/api/wishlist/add", auth, customerOnly, h.AddToWishlist)
	app.Post("/api/wishlist/remove", auth, customerOnly, h.RemoveFromWishlist)
}
