package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/Shahriar1638/Biznest-sub001/controllers/products"
)

func ProductsRoute(app *fiber.App, auth, customerOnly, sellerOnly fiber.Handler, h *productController.Controller) {
	app.Get("/api/get-all-products", h.GetAllProducts)
	app.Get("/api/search", h.SearchProducts)
	app.Get("/api/details", h.FetchProductDetails)

	// Seller listings
	app.Post("/api/seller/add-product", auth, sellerOnly, h.AddProduct)
	app.Get("/api/seller/my-products", auth, sellerOnly, h.MyProducts)

	app.Post("/api/rate-product", auth, customerOnly, h.RateProduct)
}
