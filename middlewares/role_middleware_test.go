package middlewares

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

type fakeUserStore struct {
	FindByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserStore) UpdateProfile(ctx context.Context, email, name, imageUrl, address string) error {
	return nil
}
func (f *fakeUserStore) SetBanned(ctx context.Context, email string, banned bool) error { return nil }
func (f *fakeUserStore) AddRevenue(ctx context.Context, sellerEmail string, amount float64) error {
	return nil
}
func (f *fakeUserStore) IncModerationCounter(ctx context.Context, sellerEmail, status string) error {
	return nil
}
func (f *fakeUserStore) AddPoints(ctx context.Context, customerEmail string, points int) error {
	return nil
}
func (f *fakeUserStore) SetWishlist(ctx context.Context, customerEmail string, wishlist []string) error {
	return nil
}

func roleApp(users stores.UserStore, role string) *fiber.App {
	app := fiber.New()
	// Stand-in for Auth: inject the decoded email claim.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalEmail, "who@b.com")
		return c.Next()
	})
	app.Get("/gated", RequireRole(users, role), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleSeller, Seller: &models.SellerProfile{}}, nil
		},
	}
	app := roleApp(users, models.RoleSeller)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleCustomer, Customer: &models.CustomerProfile{}}, nil
		},
	}
	app := roleApp(users, models.RoleSeller)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for role mismatch, got %d", resp.StatusCode)
	}
}

func TestRequireRoleForbidsUnknownAccount(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, stores.ErrNotFound
		},
	}
	app := roleApp(users, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for unknown account, got %d", resp.StatusCode)
	}
}

func TestRequireRoleStoreFaultIsServerError(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}
	app := roleApp(users, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("store faults must map to 500, not 403; got %d", resp.StatusCode)
	}
}

func TestRequireRoleForbidsBannedAccount(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleSeller, Banned: true, Seller: &models.SellerProfile{}}, nil
		},
	}
	app := roleApp(users, models.RoleSeller)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for banned account, got %d", resp.StatusCode)
	}
}
