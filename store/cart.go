package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandm-backend/models"
)

// CartStore persists carts, one document per owner.
type CartStore struct {
	collection *mongo.Collection
}

func (s *CartStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	if err := s.collection.FindOne(ctx, bson.M{"owner": owner}).Decode(&cart); err != nil {
		return nil, translateErr(err)
	}
	return &cart, nil
}

func (s *CartStore) Insert(ctx context.Context, cart *models.Cart) error {
	result, err := s.collection.InsertOne(ctx, cart)
	if err != nil {
		return err
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Save upserts the cart keyed by owner, keeping the one-cart-per-owner
// invariant even if the document was deleted between read and write.
func (s *CartStore) Save(ctx context.Context, cart *models.Cart) error {
	update := bson.M{"$set": bson.M{
		"items":       cart.Items,
		"totalAmount": cart.TotalAmount,
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"owner": cart.Owner}, update,
		options.Update().SetUpsert(true))
	return err
}

func (s *CartStore) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"owner": owner})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
