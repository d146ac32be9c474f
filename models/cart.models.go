package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a cart. Item identity is the (product, size, color)
// triple; name/image/price are copied from the product at add time.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Price    float64            `bson:"price" json:"price"`
	Size     string             `bson:"size" json:"size"`
	Color    string             `bson:"color" json:"color"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart holds the selected line items for one user. At most one cart document
// exists per owner; it is created lazily and deleted when an order finalizes.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Items       []CartItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
}

// FindItem returns the index of the line matching the (product, size, color)
// triple, or -1.
func (c *Cart) FindItem(product primitive.ObjectID, size, color string) int {
	for i, item := range c.Items {
		if item.Product == product && item.Size == size && item.Color == color {
			return i
		}
	}
	return -1
}

// RecalculateTotal recomputes the cart total as the sum of price x quantity
// across all lines, rounded to cents.
func (c *Cart) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	c.TotalAmount = total.Round(2).InexactFloat64()
}

// AddToCartRequest adds quantity of a (product, size, color) triple.
type AddToCartRequest struct {
	Product  string `json:"product" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartRequest updates or removes one line, addressed by its triple. The
// quantity is ignored on removal.
type UpdateCartRequest struct {
	Product  string `json:"product" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Quantity int    `json:"quantity,omitempty"`
}
