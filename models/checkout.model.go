package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckoutItem is a staged line item, still carrying the size/color variant.
type CheckoutItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Size      string             `bson:"size" json:"size" validate:"required"`
	Color     string             `bson:"color" json:"color" validate:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,gte=1"`
}

// Checkout is a staged, not-yet-committed order awaiting payment confirmation.
// IsFinalized is set at most once, only after IsPaid, and is the sole gate for
// producing an Order. Checkouts are never deleted.
type Checkout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User            OrderUser          `bson:"user" json:"user"`
	CheckoutItems   []CheckoutItem     `bson:"checkoutItems" json:"checkoutItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	CustomerEmail   string             `bson:"customerEmail" json:"customerEmail"`
	StripeSessionID string             `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentDetails  *PaymentDetails    `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	IsFinalized     bool               `bson:"isFinalized" json:"isFinalized"`
	FinalizedAt     *time.Time         `bson:"finalizedAt,omitempty" json:"finalizedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCheckoutRequest stages a purchase from the client's cart state.
type CreateCheckoutRequest struct {
	Username        string          `json:"username" validate:"required"`
	CheckoutItems   []CheckoutItem  `json:"checkoutItems" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	TotalPrice      float64         `json:"totalPrice" validate:"required,gt=0"`
	CustomerEmail   string          `json:"customerEmail" validate:"required,email"`
}

// VerifyPaymentRequest asks the server to confirm a gateway session.
type VerifyPaymentRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// UpdateCheckoutRequest is the admin out-of-band correction payload.
type UpdateCheckoutRequest struct {
	PaymentStatus  string          `json:"paymentStatus" validate:"required"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}
