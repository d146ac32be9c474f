package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist. The MongoDB stores
// translate mongo.ErrNoDocuments into it so callers never see driver errors.
var ErrNotFound = errors.New("document not found")

// Store bundles the per-collection stores over one database handle.
type Store struct {
	Users     *UserStore
	Products  *ProductStore
	Carts     *CartStore
	Checkouts *CheckoutStore
	Orders    *OrderStore
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// New builds the store bundle on the named database.
func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		Users:     &UserStore{collection: db.Collection("users")},
		Products:  &ProductStore{collection: db.Collection("products")},
		Carts:     &CartStore{collection: db.Collection("carts")},
		Checkouts: &CheckoutStore{collection: db.Collection("checkouts")},
		Orders:    &OrderStore{collection: db.Collection("orders")},
	}
}

func translateErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
