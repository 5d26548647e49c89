package stores

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

type MongoCartStore struct {
	col *mongo.Collection
}

func NewMongoCartStore(col *mongo.Collection) *MongoCartStore {
	return &MongoCartStore{col: col}
}

func (s *MongoCartStore) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	var cart models.Cart
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Upsert writes the whole cart document, creating it on first use. The
// email filter plus upsert keeps the one-cart-per-customer invariant.
func (s *MongoCartStore) Upsert(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"items":     cart.Items,
		"updatedAt": cart.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, bson.M{"email": cart.Email}, update, opts)
	return err
}

func (s *MongoCartStore) Clear(ctx context.Context, email string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"items": []models.CartLine{}, "updatedAt": time.Now()}},
	)
	return err
}
