package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

// PointsPerCurrencyUnit is how many loyalty points a customer earns per
// whole currency unit of a confirmed payment.
const PointsPerCurrencyUnit = 1

type CheckoutService struct {
	users    stores.UserStore
	products stores.ProductStore
	carts    stores.CartStore
	payments stores.PaymentStore
	gateway  PaymentGateway

	shippingFlatRate float64
	currency         string
	log              zerolog.Logger
}

func NewCheckoutService(
	users stores.UserStore,
	products stores.ProductStore,
	carts stores.CartStore,
	payments stores.PaymentStore,
	gateway PaymentGateway,
	shippingFlatRate float64,
	currency string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		users:            users,
		products:         products,
		carts:            carts,
		payments:         payments,
		gateway:          gateway,
		shippingFlatRate: shippingFlatRate,
		currency:         currency,
		log:              log,
	}
}

// Checkout builds a priced snapshot of the customer's cart, persists it as
// a pending payment record, then registers the charge with the processor.
// The pending record is written first so a processor fault can always be
// reconciled later; the cart is never touched here.
func (s *CheckoutService) Checkout(ctx context.Context, email string) (*models.PaymentRecord, error) {
	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindValidation, "Cart is empty")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching cart", err)
	}
	if len(cart.Items) == 0 {
		return nil, NewError(KindValidation, "Cart is empty")
	}

	var items []models.PaymentLine
	calculated := decimal.Zero
	for _, line := range cart.Items {
		product, err := s.products.FindByProductId(ctx, line.ProductId)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				// Delisted since the add; price what remains.
				s.log.Warn().Str("productId", line.ProductId).Msg("skipping delisted product at checkout")
				continue
			}
			return nil, WrapError(KindInfrastructure, "Error fetching product", err)
		}
		unit, ok := product.UnitById(line.UnitId)
		if !ok {
			s.log.Warn().Str("productId", line.ProductId).Str("unitId", line.UnitId).
				Msg("skipping vanished unit at checkout")
			continue
		}

		subtotal := decimal.NewFromFloat(unit.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		calculated = calculated.Add(subtotal)
		items = append(items, models.PaymentLine{
			ProductId:   line.ProductId,
			UnitId:      line.UnitId,
			SellerEmail: line.SellerEmail,
			Quantity:    line.Quantity,
			UnitPrice:   unit.Price,
			Subtotal:    subtotal.Round(2).InexactFloat64(),
		})
	}
	if len(items) == 0 {
		return nil, NewError(KindValidation, "No cart item could be priced")
	}

	shipping := decimal.NewFromFloat(s.shippingFlatRate)
	final := calculated.Add(shipping)

	now := time.Now()
	record := &models.PaymentRecord{
		Email:           email,
		Items:           items,
		CalculatedTotal: calculated.Round(2).InexactFloat64(),
		ShippingFee:     shipping.Round(2).InexactFloat64(),
		FinalAmount:     final.Round(2).InexactFloat64(),
		Currency:        s.currency,
		Status:          models.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.payments.Insert(ctx, record); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to create payment record", err)
	}

	amount := final.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	intent, err := s.gateway.CreateIntent(amount, s.currency, "receipt_"+uuid.NewString())
	if err != nil {
		if updErr := s.payments.SetStatus(ctx, record.Id.Hex(), models.PaymentFailed, ""); updErr != nil {
			s.log.Error().Err(updErr).Str("recordId", record.Id.Hex()).
				Msg("failed to mark payment record failed")
		}
		return nil, WrapError(KindPaymentDeclined, "Payment processor rejected the charge", err)
	}

	if err := s.payments.SetProcessorOrder(ctx, record.Id.Hex(), intent.OrderId); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to store processor reference", err)
	}
	record.ProcessorOrderId = intent.OrderId
	return record, nil
}

// Confirm verifies the processor's signature and finalizes a successful
// payment: the record becomes succeeded, the cart is cleared, sellers are
// credited and the customer earns points.
func (s *CheckoutService) Confirm(ctx context.Context, email, recordId, paymentId, signature string) (*models.PaymentRecord, error) {
	record, err := s.fetchOwnRecord(ctx, email, recordId)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(record); err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(record.ProcessorOrderId, paymentId, signature) {
		return nil, NewError(KindValidation, "Invalid payment signature")
	}

	if err := s.payments.SetStatus(ctx, recordId, models.PaymentSucceeded, paymentId); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to update payment record", err)
	}
	record.Status = models.PaymentSucceeded
	record.ProcessorPaymentId = paymentId

	if err := s.carts.Clear(ctx, email); err != nil {
		// Charge went through; the stale cart is recoverable on next view.
		s.log.Error().Err(err).Str("email", email).Msg("failed to clear cart after payment")
	}

	for _, item := range record.Items {
		if err := s.users.AddRevenue(ctx, item.SellerEmail, item.Subtotal); err != nil {
			s.log.Error().Err(err).Str("seller", item.SellerEmail).Msg("failed to credit seller revenue")
		}
	}
	points := int(record.FinalAmount) * PointsPerCurrencyUnit
	if points > 0 {
		if err := s.users.AddPoints(ctx, email, points); err != nil {
			s.log.Error().Err(err).Str("email", email).Msg("failed to award points")
		}
	}

	return record, nil
}

// RecordOutcome stores a processor-reported non-success outcome verbatim.
// The cart stays intact so the customer can retry.
func (s *CheckoutService) RecordOutcome(ctx context.Context, email, recordId, outcome string) (*models.PaymentRecord, error) {
	if outcome != models.PaymentRequiresAction && outcome != models.PaymentFailed {
		return nil, NewError(KindValidation, "Unknown payment outcome")
	}

	record, err := s.fetchOwnRecord(ctx, email, recordId)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(record); err != nil {
		return nil, err
	}

	if err := s.payments.SetStatus(ctx, recordId, outcome, ""); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to update payment record", err)
	}
	record.Status = outcome
	return record, nil
}

// History lists the customer's payment records, newest first.
func (s *CheckoutService) History(ctx context.Context, email string, page, limit int64) ([]models.PaymentRecord, int64, error) {
	records, total, err := s.payments.ListByEmail(ctx, email, page, limit)
	if err != nil {
		return nil, 0, WrapError(KindInfrastructure, "Error fetching payment records", err)
	}
	return records, total, nil
}

// ensureOpen rejects transitions out of a settled record. Only pending and
// requires-action records may still move.
func ensureOpen(record *models.PaymentRecord) error {
	if record.Status != models.PaymentPending && record.Status != models.PaymentRequiresAction {
		return NewError(KindValidation, "Payment record is already "+record.Status)
	}
	return nil
}

func (s *CheckoutService) fetchOwnRecord(ctx context.Context, email, recordId string) (*models.PaymentRecord, error) {
	record, err := s.payments.FindById(ctx, recordId)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindNotFound, "Payment record not found")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching payment record", err)
	}
	if record.Email != email {
		return nil, NewError(KindForbidden, "Payment record belongs to another customer")
	}
	return record, nil
}
