package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

// DuplicatePolicy decides what a repeated add-to-cart of an already-present
// unit does.
type DuplicatePolicy string

const (
	MergeDuplicates  DuplicatePolicy = "merge"
	RejectDuplicates DuplicatePolicy = "reject"
)

// PricedLine is a cart line resolved against the product store's current
// listing. Unresolvable lines keep Resolvable false instead of failing the
// whole view.
type PricedLine struct {
	models.CartLine
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	Resolvable  bool    `json:"resolvable"`
}

type CartService struct {
	users    stores.UserStore
	products stores.ProductStore
	carts    stores.CartStore
	policy   DuplicatePolicy
	log      zerolog.Logger
}

func NewCartService(users stores.UserStore, products stores.ProductStore, carts stores.CartStore, policy DuplicatePolicy, log zerolog.Logger) *CartService {
	return &CartService{
		users:    users,
		products: products,
		carts:    carts,
		policy:   policy,
		log:      log,
	}
}

// AddItem appends or merges one unit selection into the customer's cart,
// creating the cart on first use.
func (s *CartService) AddItem(ctx context.Context, email, productId, unitId string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, NewError(KindValidation, "Quantity must be at least 1")
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindValidation, "Unknown customer")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching customer", err)
	}

	product, err := s.products.FindByProductId(ctx, productId)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindValidation, "Product not found")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching product", err)
	}
	if product.Status != models.ProductReleased {
		return nil, NewError(KindValidation, "Product is not available for purchase")
	}
	if _, ok := product.UnitById(unitId); !ok {
		return nil, NewError(KindValidation, "Unit not found on product")
	}

	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, stores.ErrNotFound) {
			return nil, WrapError(KindInfrastructure, "Error fetching cart", err)
		}
		cart = &models.Cart{Email: email}
	}

	if i := cart.LineByUnit(unitId); i >= 0 {
		if s.policy == RejectDuplicates {
			return nil, NewError(KindValidation, "Unit is already in the cart")
		}
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartLine{
			UnitId:      unitId,
			ProductId:   productId,
			SellerEmail: product.SellerEmail,
			Quantity:    quantity,
		})
	}

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to update cart", err)
	}
	return cart, nil
}

// View prices the cart against current listings. Lines whose product or
// unit disappeared since the add are returned unpriced.
func (s *CartService) View(ctx context.Context, email string) ([]PricedLine, error) {
	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return []PricedLine{}, nil
		}
		return nil, WrapError(KindInfrastructure, "Error fetching cart", err)
	}

	lines := make([]PricedLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		priced := PricedLine{CartLine: item}
		product, err := s.products.FindByProductId(ctx, item.ProductId)
		if err == nil {
			if unit, ok := product.UnitById(item.UnitId); ok {
				priced.ProductName = product.Name
				priced.UnitPrice = unit.Price
				priced.Subtotal = unit.Price * float64(item.Quantity)
				priced.Resolvable = true
			}
		} else if !errors.Is(err, stores.ErrNotFound) {
			return nil, WrapError(KindInfrastructure, "Error fetching product", err)
		}
		if !priced.Resolvable {
			s.log.Warn().Str("productId", item.ProductId).Str("unitId", item.UnitId).
				Msg("cart line no longer resolvable")
		}
		lines = append(lines, priced)
	}
	return lines, nil
}

// RemoveItem drops the line holding unitId, if present.
func (s *CartService) RemoveItem(ctx context.Context, email, unitId string) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindNotFound, "Cart not found")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching cart", err)
	}

	i := cart.LineByUnit(unitId)
	if i < 0 {
		return nil, NewError(KindNotFound, "Unit not found in cart")
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to update cart", err)
	}
	return cart, nil
}
