package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

type ModerationService struct {
	products stores.ProductStore
	users    stores.UserStore
	log      zerolog.Logger
}

func NewModerationService(products stores.ProductStore, users stores.UserStore, log zerolog.Logger) *ModerationService {
	return &ModerationService{products: products, users: users, log: log}
}

// Pending lists products awaiting moderation.
func (s *ModerationService) Pending(ctx context.Context, page, limit int64) ([]models.Product, int64, error) {
	products, total, err := s.products.ListByStatus(ctx, models.ProductPending, page, limit)
	if err != nil {
		return nil, 0, WrapError(KindInfrastructure, "Error fetching pending products", err)
	}
	return products, total, nil
}

// SetStatus releases or rejects a listing, recording who decided and when,
// and bumps the seller's moderation counters.
func (s *ModerationService) SetStatus(ctx context.Context, adminEmail, productId, status string) error {
	if status != models.ProductReleased && status != models.ProductRejected {
		return NewError(KindValidation, "Status must be released or rejected")
	}

	product, err := s.products.FindByProductId(ctx, productId)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return NewError(KindNotFound, "Product not found")
		}
		return WrapError(KindInfrastructure, "Error fetching product", err)
	}

	if err := s.products.SetStatus(ctx, productId, status, adminEmail, time.Now()); err != nil {
		return WrapError(KindInfrastructure, "Failed to update product status", err)
	}

	if err := s.users.IncModerationCounter(ctx, product.SellerEmail, status); err != nil {
		// Status change stands; the counter is advisory.
		s.log.Error().Err(err).Str("seller", product.SellerEmail).Msg("failed to bump moderation counter")
	}
	return nil
}
