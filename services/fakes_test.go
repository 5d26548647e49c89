package services

import (
	"context"
	"time"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

// ---- func-field fakes for the store interfaces ----

type fakeUserStore struct {
	FindByEmailFn          func(ctx context.Context, email string) (*models.User, error)
	AddRevenueFn           func(ctx context.Context, sellerEmail string, amount float64) error
	AddPointsFn            func(ctx context.Context, customerEmail string, points int) error
	IncModerationCounterFn func(ctx context.Context, sellerEmail, status string) error
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.FindByEmailFn == nil {
		return nil, stores.ErrNotFound
	}
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserStore) UpdateProfile(ctx context.Context, email, name, imageUrl, address string) error {
	return nil
}

func (f *fakeUserStore) SetBanned(ctx context.Context, email string, banned bool) error { return nil }

func (f *fakeUserStore) AddRevenue(ctx context.Context, sellerEmail string, amount float64) error {
	if f.AddRevenueFn == nil {
		return nil
	}
	return f.AddRevenueFn(ctx, sellerEmail, amount)
}

func (f *fakeUserStore) IncModerationCounter(ctx context.Context, sellerEmail, status string) error {
	if f.IncModerationCounterFn == nil {
		return nil
	}
	return f.IncModerationCounterFn(ctx, sellerEmail, status)
}

func (f *fakeUserStore) AddPoints(ctx context.Context, customerEmail string, points int) error {
	if f.AddPointsFn == nil {
		return nil
	}
	return f.AddPointsFn(ctx, customerEmail, points)
}

func (f *fakeUserStore) SetWishlist(ctx context.Context, customerEmail string, wishlist []string) error {
	return nil
}

type fakeProductStore struct {
	FindByProductIdFn func(ctx context.Context, productId string) (*models.Product, error)
	ListByStatusFn    func(ctx context.Context, status string, page, limit int64) ([]models.Product, int64, error)
	SetStatusFn       func(ctx context.Context, productId, status, changedBy string, changedAt time.Time) error
}

func (f *fakeProductStore) FindByProductId(ctx context.Context, productId string) (*models.Product, error) {
	if f.FindByProductIdFn == nil {
		return nil, stores.ErrNotFound
	}
	return f.FindByProductIdFn(ctx, productId)
}

func (f *fakeProductStore) Insert(ctx context.Context, product *models.Product) error { return nil }

func (f *fakeProductStore) ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.Product, int64, error) {
	if f.ListByStatusFn == nil {
		return nil, 0, nil
	}
	return f.ListByStatusFn(ctx, status, page, limit)
}

func (f *fakeProductStore) ListBySeller(ctx context.Context, sellerEmail string, page, limit int64) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductStore) Search(ctx context.Context, query string, page, limit int64) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductStore) SetStatus(ctx context.Context, productId, status, changedBy string, changedAt time.Time) error {
	if f.SetStatusFn == nil {
		return nil
	}
	return f.SetStatusFn(ctx, productId, status, changedBy, changedAt)
}

func (f *fakeProductStore) UpsertRating(ctx context.Context, productId string, rating models.Rating) error {
	return nil
}

type fakeCartStore struct {
	FindByEmailFn func(ctx context.Context, email string) (*models.Cart, error)
	UpsertFn      func(ctx context.Context, cart *models.Cart) error
	ClearFn       func(ctx context.Context, email string) error

	ClearCalls int
}

func (f *fakeCartStore) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	if f.FindByEmailFn == nil {
		return nil, stores.ErrNotFound
	}
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeCartStore) Upsert(ctx context.Context, cart *models.Cart) error {
	if f.UpsertFn == nil {
		return nil
	}
	return f.UpsertFn(ctx, cart)
}

func (f *fakeCartStore) Clear(ctx context.Context, email string) error {
	f.ClearCalls++
	if f.ClearFn == nil {
		return nil
	}
	return f.ClearFn(ctx, email)
}

type fakePaymentStore struct {
	InsertFn            func(ctx context.Context, record *models.PaymentRecord) error
	FindByIdFn          func(ctx context.Context, id string) (*models.PaymentRecord, error)
	SetProcessorOrderFn func(ctx context.Context, id, processorOrderId string) error
	SetStatusFn         func(ctx context.Context, id, status, processorPaymentId string) error
}

func (f *fakePaymentStore) Insert(ctx context.Context, record *models.PaymentRecord) error {
	if f.InsertFn == nil {
		return nil
	}
	return f.InsertFn(ctx, record)
}

func (f *fakePaymentStore) FindById(ctx context.Context, id string) (*models.PaymentRecord, error) {
	if f.FindByIdFn == nil {
		return nil, stores.ErrNotFound
	}
	return f.FindByIdFn(ctx, id)
}

func (f *fakePaymentStore) SetProcessorOrder(ctx context.Context, id, processorOrderId string) error {
	if f.SetProcessorOrderFn == nil {
		return nil
	}
	return f.SetProcessorOrderFn(ctx, id, processorOrderId)
}

func (f *fakePaymentStore) SetStatus(ctx context.Context, id, status, processorPaymentId string) error {
	if f.SetStatusFn == nil {
		return nil
	}
	return f.SetStatusFn(ctx, id, status, processorPaymentId)
}

func (f *fakePaymentStore) ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.PaymentRecord, int64, error) {
	return nil, 0, nil
}

type fakeContactStore struct {
	InsertFn         func(ctx context.Context, msg *models.ContactMessage) error
	FindByTicketIdFn func(ctx context.Context, ticketId string) (*models.ContactMessage, error)
	ListByStatusFn   func(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error)
	UpdateFn         func(ctx context.Context, msg *models.ContactMessage) error
	MarkAdminReadFn  func(ctx context.Context, ticketIds []string) error
}

func (f *fakeContactStore) Insert(ctx context.Context, msg *models.ContactMessage) error {
	if f.InsertFn == nil {
		return nil
	}
	return f.InsertFn(ctx, msg)
}

func (f *fakeContactStore) FindByTicketId(ctx context.Context, ticketId string) (*models.ContactMessage, error) {
	if f.FindByTicketIdFn == nil {
		return nil, stores.ErrNotFound
	}
	return f.FindByTicketIdFn(ctx, ticketId)
}

func (f *fakeContactStore) ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error) {
	if f.ListByStatusFn == nil {
		return nil, 0, nil
	}
	return f.ListByStatusFn(ctx, status, page, limit)
}

func (f *fakeContactStore) ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.ContactMessage, int64, error) {
	return nil, 0, nil
}

func (f *fakeContactStore) Update(ctx context.Context, msg *models.ContactMessage) error {
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, msg)
}

func (f *fakeContactStore) MarkAdminRead(ctx context.Context, ticketIds []string) error {
	if f.MarkAdminReadFn == nil {
		return nil
	}
	return f.MarkAdminReadFn(ctx, ticketIds)
}

type fakeGateway struct {
	CreateIntentFn    func(amount int64, currency, receipt string) (*GatewayIntent, error)
	VerifySignatureFn func(orderId, paymentId, signature string) bool
}

func (f *fakeGateway) CreateIntent(amount int64, currency, receipt string) (*GatewayIntent, error) {
	if f.CreateIntentFn == nil {
		return &GatewayIntent{OrderId: "order_test", Status: "created", Amount: amount, Currency: currency}, nil
	}
	return f.CreateIntentFn(amount, currency, receipt)
}

func (f *fakeGateway) VerifySignature(orderId, paymentId, signature string) bool {
	if f.VerifySignatureFn == nil {
		return true
	}
	return f.VerifySignatureFn(orderId, paymentId, signature)
}
