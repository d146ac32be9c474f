package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandm-backend/models"
)

type OrderStore struct {
	collection *mongo.Collection
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return primitive.NilObjectID, err
	}
	return order.ID, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *OrderStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"user._id": owner}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) FindBySessionID(ctx context.Context, owner primitive.ObjectID, sessionID string) (*models.Order, error) {
	filter := bson.M{
		"user._id":                       owner,
		"paymentDetails.stripeSessionId": sessionID,
	}
	var order models.Order
	if err := s.collection.FindOne(ctx, filter).Decode(&order); err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *OrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
