package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
)

// Store interfaces are defined here, where they are consumed; the store
// package provides the MongoDB implementations. Absent documents surface as
// store.ErrNotFound.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	Search(ctx context.Context, query models.ProductQuery) ([]models.Product, error)
	FindSimilar(ctx context.Context, product *models.Product, limit int64) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartStore interface {
	FindByOwner(ctx context.Context, owner primitive.ObjectID) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	Save(ctx context.Context, cart *models.Cart) error
	DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error
}

type CheckoutStore interface {
	Insert(ctx context.Context, checkout *models.Checkout) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Checkout, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.Checkout, error)
	Save(ctx context.Context, checkout *models.Checkout) error
	// MarkFinalized flips the finalized flag with a single conditional write
	// and reports whether this call won the transition.
	MarkFinalized(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Order, error)
	FindBySessionID(ctx context.Context, owner primitive.ObjectID, sessionID string) (*models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Mailer sends transactional mail. Implementations are best-effort; callers
// log failures and move on.
type Mailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}
