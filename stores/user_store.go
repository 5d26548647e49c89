package stores

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) UpdateProfile(ctx context.Context, email, name, imageUrl, address string) error {
	update := bson.M{
		"name":         name,
		"profileImage": imageUrl,
		"address":      address,
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) SetBanned(ctx context.Context, email string, banned bool) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"banned": banned}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) AddRevenue(ctx context.Context, sellerEmail string, amount float64) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": sellerEmail, "role": models.RoleSeller},
		bson.M{"$inc": bson.M{"seller.revenue": amount}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) IncModerationCounter(ctx context.Context, sellerEmail, status string) error {
	field := ""
	switch status {
	case models.ProductReleased:
		field = "seller.released"
	case models.ProductRejected:
		field = "seller.rejected"
	default:
		return nil
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": sellerEmail, "role": models.RoleSeller},
		bson.M{"$inc": bson.M{field: 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) AddPoints(ctx context.Context, customerEmail string, points int) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": customerEmail, "role": models.RoleCustomer},
		bson.M{"$inc": bson.M{"customer.points": points}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) SetWishlist(ctx context.Context, customerEmail string, wishlist []string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": customerEmail, "role": models.RoleCustomer},
		bson.M{"$set": bson.M{"customer.wishlist": wishlist}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
