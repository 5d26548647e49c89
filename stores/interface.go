package stores

import (
	"context"
	"errors"
	"time"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

// ErrNotFound is returned for document misses. Callers rely on it to tell
// policy outcomes apart from infrastructure faults.
var ErrNotFound = errors.New("document not found")

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, email, name, imageUrl, address string) error
	SetBanned(ctx context.Context, email string, banned bool) error
	AddRevenue(ctx context.Context, sellerEmail string, amount float64) error
	IncModerationCounter(ctx context.Context, sellerEmail, status string) error
	AddPoints(ctx context.Context, customerEmail string, points int) error
	SetWishlist(ctx context.Context, customerEmail string, wishlist []string) error
}

type ProductStore interface {
	FindByProductId(ctx context.Context, productId string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.Product, int64, error)
	ListBySeller(ctx context.Context, sellerEmail string, page, limit int64) ([]models.Product, int64, error)
	Search(ctx context.Context, query string, page, limit int64) ([]models.Product, int64, error)
	SetStatus(ctx context.Context, productId, status, changedBy string, changedAt time.Time) error
	UpsertRating(ctx context.Context, productId string, rating models.Rating) error
}

type CartStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Cart, error)
	Upsert(ctx context.Context, cart *models.Cart) error
	Clear(ctx context.Context, email string) error
}

type PaymentStore interface {
	Insert(ctx context.Context, record *models.PaymentRecord) error
	FindById(ctx context.Context, id string) (*models.PaymentRecord, error)
	SetProcessorOrder(ctx context.Context, id, processorOrderId string) error
	SetStatus(ctx context.Context, id, status, processorPaymentId string) error
	ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.PaymentRecord, int64, error)
}

type ContactStore interface {
	Insert(ctx context.Context, msg *models.ContactMessage) error
	FindByTicketId(ctx context.Context, ticketId string) (*models.ContactMessage, error)
	ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error)
	ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.ContactMessage, int64, error)
	Update(ctx context.Context, msg *models.ContactMessage) error
	MarkAdminRead(ctx context.Context, ticketIds []string) error
}

// SessionStore tracks revoked auth tokens until their natural expiry.
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
