package userController

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/responses"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

var validate = validator.New()

type Controller struct {
	Users     stores.UserStore
	Sessions  stores.SessionStore
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

type signUpRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
	Role            string `json:"role" validate:"required,oneof=customer seller"`
}

func (h *Controller) SignUp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody signUpRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Invalid signup data: "+err.Error())
	}
	if reqBody.Password != reqBody.ConfirmPassword {
		return badRequest(c, "Passwords do not match")
	}

	_, err := h.Users.FindByEmail(ctx, reqBody.Email)
	if err == nil {
		return badRequest(c, "User with same email already exists")
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return internalError(c, "Error checking user existence")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(c, "Error hashing password")
	}

	newUser := models.User{
		Name:      reqBody.Name,
		Email:     reqBody.Email,
		Password:  string(hashedPassword),
		Role:      reqBody.Role,
		CreatedAt: time.Now(),
	}
	switch reqBody.Role {
	case models.RoleCustomer:
		newUser.Customer = &models.CustomerProfile{Wishlist: []string{}}
	case models.RoleSeller:
		newUser.Seller = &models.SellerProfile{}
	}
	if err := newUser.CheckRolePayload(); err != nil {
		return internalError(c, "Invalid role payload")
	}

	if err := h.Users.Insert(ctx, &newUser); err != nil {
		return internalError(c, "Failed to create user")
	}

	h.Log.Info().Str("email", newUser.Email).Str("role", newUser.Role).Msg("user signed up")
	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Account created successfully",
		Result:  &fiber.Map{"email": newUser.Email, "role": newUser.Role},
	})
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Controller) SignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody signInRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Email and password are required")
	}

	user, err := h.Users.FindByEmail(ctx, reqBody.Email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return badRequest(c, "Invalid email or password")
		}
		return internalError(c, "Error fetching user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)); err != nil {
		return badRequest(c, "Invalid email or password")
	}

	if user.Banned {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Account is banned",
		})
	}

	expiresAt := time.Now().Add(h.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"exp":   expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return internalError(c, "Error creating token")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed in successfully",
		Result: &fiber.Map{
			"token": signed,
			"email": user.Email,
			"role":  user.Role,
			"name":  user.Name,
		},
	})
}

// SignOut revokes the presented token for its remaining lifetime.
func (h *Controller) SignOut(c *fiber.Ctx) error {
	tokenString, _ := c.Locals(middlewares.LocalToken).(string)
	if tokenString == "" {
		return badRequest(c, "No token to revoke")
	}

	ttl := h.TokenTTL
	claims := &jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.JWTSecret), nil
	}); err == nil {
		if exp, ok := (*claims)["exp"].(float64); ok {
			ttl = time.Until(time.Unix(int64(exp), 0))
		}
	}

	if err := h.Sessions.Revoke(c.Context(), tokenString, ttl); err != nil {
		return internalError(c, "Failed to revoke token")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed out successfully",
	})
}

func (h *Controller) GetProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)
	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Error fetching user data")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched profile",
		Result:  &fiber.Map{"user": user},
	})
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	ImageUrl string `json:"profileImage"`
	Address  string `json:"address"`
}

func (h *Controller) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)

	var reqBody updateProfileRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Name is required")
	}

	if err := h.Users.UpdateProfile(ctx, email, reqBody.Name, reqBody.ImageUrl, reqBody.Address); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Error updating user profile")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
	})
}

type wishlistRequest struct {
	ProductId string `json:"productId" validate:"required"`
}

// AddToWishlist appends a product id to the customer's wishlist.
func (h *Controller) AddToWishlist(c *fiber.Ctx) error {
	return h.updateWishlist(c, true)
}

// RemoveFromWishlist drops a product id from the customer's wishlist.
func (h *Controller) RemoveFromWishlist(c *fiber.Ctx) error {
	return h.updateWishlist(c, false)
}

func (h *Controller) updateWishlist(c *fiber.Ctx, add bool) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email, _ := c.Locals(middlewares.LocalEmail).(string)

	var reqBody wishlistRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validate.Struct(&reqBody); err != nil {
		return badRequest(c, "Product id is required")
	}

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Error fetching user data")
	}
	if user.Customer == nil {
		return badRequest(c, "Account has no wishlist")
	}

	wishlist := make([]string, 0, len(user.Customer.Wishlist)+1)
	for _, id := range user.Customer.Wishlist {
		if id != reqBody.ProductId {
			wishlist = append(wishlist, id)
		}
	}
	if add {
		wishlist = append(wishlist, reqBody.ProductId)
	}

	if err := h.Users.SetWishlist(ctx, email, wishlist); err != nil {
		return internalError(c, "Failed to update wishlist")
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Wishlist updated successfully",
		Result:  &fiber.Map{"wishlist": wishlist},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: message,
	})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: message,
	})
}
