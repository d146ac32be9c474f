package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fulfillment statuses with derived side effects on the delivered flag. Any
// other value is stored as-is with no effect.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusPending    = "pending"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderUser is the buyer snapshot embedded in checkouts and orders.
type OrderUser struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// OrderItem is a committed line item. Size and color are dropped at this
// stage; the price is the one captured when the item entered the cart.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// ShippingAddress is the destination snapshot shared by checkouts and orders.
type ShippingAddress struct {
	Address    string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
	Country    string `bson:"country" json:"country" validate:"required"`
}

// Order is a committed, paid purchase record. It is produced exactly once from
// a finalized checkout and mutated only by admin fulfillment updates.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User            OrderUser          `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentDetails  *PaymentDetails    `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateOrderStatusRequest is the admin fulfillment update payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
