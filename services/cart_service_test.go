package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

func customerStore() *fakeUserStore {
	return &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				Email:    email,
				Role:     models.RoleCustomer,
				Customer: &models.CustomerProfile{},
			}, nil
		},
	}
}

func releasedProduct() *fakeProductStore {
	return &fakeProductStore{
		FindByProductIdFn: func(ctx context.Context, productId string) (*models.Product, error) {
			return &models.Product{
				ProductId:   productId,
				SellerEmail: "seller@example.com",
				Name:        "Green Tea",
				Status:      models.ProductReleased,
				Units: []models.Unit{
					{UnitId: "u1", Value: 500, Type: "g", Quantity: 10, Price: 25.00},
					{UnitId: "u2", Value: 1, Type: "kg", Quantity: 5, Price: 45.00},
				},
			}, nil
		},
	}
}

func TestAddItemRejectsZeroQuantityBeforeStore(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			t.Fatal("store should not be touched for invalid quantity")
			return nil, nil
		},
	}
	svc := NewCartService(users, releasedProduct(), &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 0)
	if err == nil {
		t.Fatal("expected error for quantity 0")
	}
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got kind %d", KindOf(err))
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := NewCartService(customerStore(), &fakeProductStore{}, &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "missing", "u1", 1)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemUnknownUnit(t *testing.T) {
	svc := NewCartService(customerStore(), releasedProduct(), &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "p1", "nope", 1)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemPendingProductRejected(t *testing.T) {
	products := &fakeProductStore{
		FindByProductIdFn: func(ctx context.Context, productId string) (*models.Product, error) {
			return &models.Product{
				ProductId: productId,
				Status:    models.ProductPending,
				Units:     []models.Unit{{UnitId: "u1", Value: 1, Type: "kg", Quantity: 1, Price: 10}},
			}, nil
		},
	}
	svc := NewCartService(customerStore(), products, &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 1)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for pending product, got %v", err)
	}
}

func TestAddItemCreatesCartOnFirstUse(t *testing.T) {
	var saved *models.Cart
	carts := &fakeCartStore{
		UpsertFn: func(ctx context.Context, cart *models.Cart) error {
			saved = cart
			return nil
		},
	}
	svc := NewCartService(customerStore(), releasedProduct(), carts, MergeDuplicates, zerolog.Nop())

	cart, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("cart was not persisted")
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart items: %+v", cart.Items)
	}
	if cart.Items[0].SellerEmail != "seller@example.com" {
		t.Fatalf("line should carry listing seller, got %q", cart.Items[0].SellerEmail)
	}
}

func TestAddItemMergePolicyMergesQuantities(t *testing.T) {
	carts := &fakeCartStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Cart, error) {
			return &models.Cart{
				Email: email,
				Items: []models.CartLine{{UnitId: "u1", ProductId: "p1", Quantity: 1}},
			}, nil
		},
	}
	svc := NewCartService(customerStore(), releasedProduct(), carts, MergeDuplicates, zerolog.Nop())

	cart, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line per distinct unit, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 4 {
		t.Fatalf("expected merged quantity 4, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemRejectPolicyErrorsOnDuplicate(t *testing.T) {
	carts := &fakeCartStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Cart, error) {
			return &models.Cart{
				Email: email,
				Items: []models.CartLine{{UnitId: "u1", ProductId: "p1", Quantity: 1}},
			}, nil
		},
	}
	svc := NewCartService(customerStore(), releasedProduct(), carts, RejectDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 1)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error under reject policy, got %v", err)
	}
}

func TestAddItemStoreFaultIsInfrastructure(t *testing.T) {
	users := &fakeUserStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}
	svc := NewCartService(users, releasedProduct(), &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	_, err := svc.AddItem(context.Background(), "a@b.com", "p1", "u1", 1)
	if KindOf(err) != KindInfrastructure {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestViewSkipsUnresolvableLines(t *testing.T) {
	carts := &fakeCartStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Cart, error) {
			return &models.Cart{
				Email: email,
				Items: []models.CartLine{
					{UnitId: "u1", ProductId: "p1", Quantity: 2},
					{UnitId: "gone", ProductId: "deleted", Quantity: 1},
				},
			}, nil
		},
	}
	products := &fakeProductStore{
		FindByProductIdFn: func(ctx context.Context, productId string) (*models.Product, error) {
			if productId == "deleted" {
				return nil, stores.ErrNotFound
			}
			return &models.Product{
				ProductId: productId,
				Name:      "Green Tea",
				Status:    models.ProductReleased,
				Units:     []models.Unit{{UnitId: "u1", Value: 500, Type: "g", Quantity: 10, Price: 25.00}},
			}, nil
		},
	}
	svc := NewCartService(customerStore(), products, carts, MergeDuplicates, zerolog.Nop())

	lines, err := svc.View(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected both lines returned, got %d", len(lines))
	}
	if !lines[0].Resolvable || lines[0].Subtotal != 50.00 {
		t.Fatalf("first line should price to 50.00, got %+v", lines[0])
	}
	if lines[1].Resolvable {
		t.Fatal("deleted product line should be unresolvable")
	}
}

func TestViewMissingCartIsEmpty(t *testing.T) {
	svc := NewCartService(customerStore(), releasedProduct(), &fakeCartStore{}, MergeDuplicates, zerolog.Nop())

	lines, err := svc.View(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty view, got %d lines", len(lines))
	}
}

func TestRemoveItem(t *testing.T) {
	carts := &fakeCartStore{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Cart, error) {
			return &models.Cart{
				Email: email,
				Items: []models.CartLine{
					{UnitId: "u1", ProductId: "p1", Quantity: 1},
					{UnitId: "u2", ProductId: "p1", Quantity: 2},
				},
			}, nil
		},
	}
	svc := NewCartService(customerStore(), releasedProduct(), carts, MergeDuplicates, zerolog.Nop())

	cart, err := svc.RemoveItem(context.Background(), "a@b.com", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].UnitId != "u2" {
		t.Fatalf("unexpected items after remove: %+v", cart.Items)
	}

	_, err = svc.RemoveItem(context.Background(), "a@b.com", "nope")
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
