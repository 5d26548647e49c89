package stores

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

type MongoContactStore struct {
	col *mongo.Collection
}

func NewMongoContactStore(col *mongo.Collection) *MongoContactStore {
	return &MongoContactStore{col: col}
}

func (s *MongoContactStore) Insert(ctx context.Context, msg *models.ContactMessage) error {
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

func (s *MongoContactStore) FindByTicketId(ctx context.Context, ticketId string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.col.FindOne(ctx, bson.M{"ticketId": ticketId}).Decode(&msg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (s *MongoContactStore) list(ctx context.Context, filter bson.M, page, limit int64) ([]models.ContactMessage, int64, error) {
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
	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (s *MongoContactStore) ListByStatus(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.list(ctx, filter, page, limit)
}

func (s *MongoContactStore) ListByEmail(ctx context.Context, email string, page, limit int64) ([]models.ContactMessage, int64, error) {
	return s.list(ctx, bson.M{"email": email}, page, limit)
}

func (s *MongoContactStore) MarkAdminRead(ctx context.Context, ticketIds []string) error {
	if len(ticketIds) == 0 {
		return nil
	}
	_, err := s.col.UpdateMany(ctx,
		bson.M{"ticketId": bson.M{"$in": ticketIds}},
		bson.M{"$set": bson.M{"adminRead": true}},
	)
	return err
}

func (s *MongoContactStore) Update(ctx context.Context, msg *models.ContactMessage) error {
	update := bson.M{
		"status":     msg.Status,
		"adminRead":  msg.AdminRead,
		"clientRead": msg.ClientRead,
		"reply":      msg.Reply,
		"resolvedAt": msg.ResolvedAt,
		"updatedAt":  msg.UpdatedAt,
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"ticketId": msg.TicketId}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
