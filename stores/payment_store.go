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

type MongoPaymentStore struct {
	col *mongo.Collection
}

func NewMongoPaymentStore(col *mongo.Collection) *MongoPaymentStore {
	return &MongoPaymentStore{col: col}
}

func (s *MongoPaymentStore) Insert(ctx context.Context, record *models.PaymentRecord) error {
	if record.Id.IsZero() {
		record.Id = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, record)
	return err
}

func (s *MongoPaymentStore) FindById(ctx context.Context, id string) (*models.PaymentRecord, error) {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var record models.PaymentRecord
	if err := s.col.FindOne(ctx, bson.M{"_id": objectId}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *MongoPaymentStore) SetProcessorOrder(ctx context.Context, id, processorOrderId string) error {
	return s.update(ctx, id, bson.M{
		"processorOrderId": processorOrderId,
		"updatedAt":        time.Now(),
	})
}

func (s *MongoPaymentStore) SetStatus(ctx context.Context, id, status, processorPaymentId string) error {
	update := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if processorPaymentId != "" {
		update["processorPaymentId"] = processorPaymentId
	}
	return s.update(ctx, id, update)
}

func (s *MongoPaymentStore) update(ctx context.Context, id string, set bson.M) error {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": objectId}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPaymentStore) ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.PaymentRecord, int64, error) {
	filter := bson.M{"email": email}
	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.M{"createdAt": -1})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	var records []models.PaymentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
