package productController

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

var validate = validator.New()

type Controller struct {
	Products stores.ProductStore
	Log      zerolog.Logger
}

func pagination(c *fiber.Ctx) (int64, int64) {
	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllProducts lists released products, paginated.
func (h *Controller) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, limit := pagination(c)
	products, total, err := h.Products.ListByStatus(ctx, models.ProductReleased, page, limit)
	if err != nil {
		return internalError(c, "Error fetching products")
	}

	return listResponse(c, products, total, page, limit)
}

// SearchProducts matches released products by name.
func (h *Controller) SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	query := c.Query("q", "")
	if query == "" {
		return badRequest(c, "Search query is required")
	}

	page, limit := pagination(c)
	products, total, err := h.Products.Search(ctx, query, page, limit)
	if err != nil {
		return internalError(c, "Error searching products")
	}

	return listResponse(c, products, total, page, limit)
}

// FetchProductDetails returns one listing with its average rating.
func (h *Controller) FetchProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productId := c.Query("productId", "")
	if productId == "" {
		return badRequest(c, "Product id is required")
	}

	product, err := h.Products.FindByProductId(ctx, productId)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return internalError(c, "Error fetching product details")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched product details",
		Result: &fiber.Map{
			"product":       product,
			"averageRating": product.AverageRating(),
		},
	})
}

type addProductRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Category    string        `json:"category" validate:"required"`
	Images      []string      `json:"images" validate:"required,min=1"`
	Units       []addUnitItem `json:"units" validate:"required,min=1,dive"`
}

type addUnitItem struct {
	Value    int     `json:"value" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// AddProduct creates a seller listing in pending moderation state.
func (h *Controller) AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sellerEmail, _ := c.Locals(middlewares.LocalEmail).(string)

	var reqBody addProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Invalid product data: "+err.Error())
	}

	units := make([]models.Unit, 0, len(reqBody.Units))
	for _, u := range reqBody.Units {
		units = append(units, models.Unit{
			UnitId:   uuid.NewString(),
			Value:    u.Value,
			Type:     u.Type,
			Quantity: u.Quantity,
			Price:    u.Price,
		})
	}

	product := models.Product{
		ProductId:   uuid.NewString(),
		SellerEmail: sellerEmail,
		Name:        reqBody.Name,
		Description: reqBody.Description,
		Category:    reqBody.Category,
		Images:      reqBody.Images,
		Units:       units,
		Ratings:     []models.Rating{},
		Status:      models.ProductPending,
		CreatedAt:   time.Now(),
	}

	if err := h.Products.Insert(ctx, &product); err != nil {
		return internalError(c, "Failed to create product")
	}

	h.Log.Info().Str("productId", product.ProductId).Str("seller", sellerEmail).Msg("product submitted for moderation")
	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Product submitted for moderation",
		Result:  &fiber.Map{"productId": product.ProductId},
	})
}

// MyProducts lists the seller's own listings regardless of status.
func (h *Controller) MyProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sellerEmail, _ := c.Locals(middlewares.LocalEmail).(string)
	page, limit := pagination(c)

	products, total, err := h.Products.ListBySeller(ctx, sellerEmail, page, limit)
	if err != nil {
		return internalError(c, "Error fetching products")
	}

	return listResponse(c, products, total, page, limit)
}

type rateProductRequest struct {
	ProductId string  `json:"productId" validate:"required"`
	Value     float64 `json:"value" validate:"min=0,max=5"`
}

// RateProduct records the caller's rating, replacing any previous one.
func (h *Controller) RateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)

	var reqBody rateProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Rating must be between 0 and 5")
	}

	err := h.Products.UpsertRating(ctx, reqBody.ProductId, models.Rating{
		Email: email,
		Value: reqBody.Value,
	})
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return internalError(c, "Failed to save rating")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rating saved successfully",
	})
}

func listResponse(c *fiber.Ctx, products []models.Product, total, page, limit int64) error {
	totalPages := (total + limit - 1) / limit

	status := "success"
	if len(products) == 0 {
		status = "no more products"
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched products",
		Result: &fiber.Map{
			"status":        status,
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": total,
			"products":      products,
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
