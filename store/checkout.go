package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"brandm-backend/models"
)

// CheckoutStore persists checkouts. Documents are never deleted; they are the
// audit trail of every payment attempt.
type CheckoutStore struct {
	collection *mongo.Collection
}

func (s *CheckoutStore) Insert(ctx context.Context, checkout *models.Checkout) error {
	if checkout.ID.IsZero() {
		checkout.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, checkout)
	return err
}

func (s *CheckoutStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&checkout); err != nil {
		return nil, translateErr(err)
	}
	return &checkout, nil
}

func (s *CheckoutStore) FindBySessionID(ctx context.Context, sessionID string) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := s.collection.FindOne(ctx, bson.M{"stripeSessionId": sessionID}).Decode(&checkout); err != nil {
		return nil, translateErr(err)
	}
	return &checkout, nil
}

func (s *CheckoutStore) Save(ctx context.Context, checkout *models.Checkout) error {
	update := bson.M{"$set": bson.M{
		"isPaid":         checkout.IsPaid,
		"paidAt":         checkout.PaidAt,
		"paymentStatus":  checkout.PaymentStatus,
		"paymentDetails": checkout.PaymentDetails,
		"updatedAt":      checkout.UpdatedAt,
	}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": checkout.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFinalized flips isFinalized with one conditional write. Two concurrent
// callers both past the in-memory guard race here; only the one whose filter
// still matches isFinalized=false wins.
func (s *CheckoutStore) MarkFinalized(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "isFinalized": false},
		bson.M{"$set": bson.M{"isFinalized": true, "finalizedAt": at, "updatedAt": at}},
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
