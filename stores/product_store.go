package stores

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

type MongoProductStore struct {
	col *mongo.Collection
}

func NewMongoProductStore(col *mongo.Collection) *MongoProductStore {
	return &MongoProductStore{col: col}
}

func (s *MongoProductStore) FindByProductId(ctx context.Context, productId string) (*models.Product, error) {
	var product models.Product
	if err := s.col.FindOne(ctx, bson.M{"productId": productId}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	_, err := s.col.InsertOne(ctx, product)
	return err
}

func (s *MongoProductStore) find(ctx context.Context, filter bson.M, page, limit int64) ([]models.Product, int64, error) {
	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *MongoProductStore) ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.Product, int64, error) {
	return s.find(ctx, bson.M{"status": status}, page, limit)
}

func (s *MongoProductStore) ListBySeller(ctx context.Context, sellerEmail string, page, limit int64) ([]models.Product, int64, error) {
	return s.find(ctx, bson.M{"sellerEmail": sellerEmail}, page, limit)
}

func (s *MongoProductStore) Search(ctx context.Context, query string, page, limit int64) ([]models.Product, int64, error) {
	filter := bson.M{
		"status": models.ProductReleased,
		"name":   bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}},
	}
	return s.find(ctx, filter, page, limit)
}

func (s *MongoProductStore) SetStatus(ctx context.Context, productId, status, changedBy string, changedAt time.Time) error {
	update := bson.M{
		"status":          status,
		"statusChangedBy": changedBy,
		"statusChangedAt": changedAt,
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"productId": productId}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertRating replaces the caller's previous rating, keeping one entry per
// rater email. A single pipeline update so readers never observe the rating
// missing between the removal and the re-insert.
func (s *MongoProductStore) UpsertRating(ctx context.Context, productId string, rating models.Rating) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"productId": productId},
		mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"ratings": bson.M{"$concatArrays": bson.A{
					bson.M{"$filter": bson.M{
						"input": bson.M{"$ifNull": bson.A{"$ratings", bson.A{}}},
						"cond":  bson.M{"$ne": bson.A{"$$this.email", rating.Email}},
					}},
					bson.A{bson.M{"email": rating.Email, "value": rating.Value}},
				}},
			}}},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
