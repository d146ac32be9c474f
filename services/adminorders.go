package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/store"
)

// AdminOrderService is privileged order management.
type AdminOrderService struct {
	orders OrderStore
	users  UserStore
}

func NewAdminOrderService(orders OrderStore, users UserStore) *AdminOrderService {
	return &AdminOrderService{orders: orders, users: users}
}

// AdminOrderEntry is an order with the buyer's email joined in.
type AdminOrderEntry struct {
	models.Order
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// List returns all orders, most recent first, with the buyer's email looked
// up once per distinct user.
func (s *AdminOrderService) List(ctx context.Context) ([]AdminOrderEntry, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, Internal("error fetching orders", err)
	}

	emails := make(map[primitive.ObjectID]string)
	entries := make([]AdminOrderEntry, 0, len(orders))
	for _, order := range orders {
		email, ok := emails[order.User.ID]
		if !ok {
			if user, err := s.users.FindByID(ctx, order.User.ID); err == nil {
				email = user.Email
			}
			emails[order.User.ID] = email
		}
		entries = append(entries, AdminOrderEntry{Order: order, CustomerEmail: email})
	}
	return entries, nil
}

// UpdateStatus stores the given fulfillment status. "delivered" sets the
// delivered flag and timestamp; pending/shipped/cancelled clear the flag but
// leave the old timestamp; anything else is stored as-is.
func (s *AdminOrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Order not found")
		}
		return nil, Internal("error fetching order", err)
	}

	order.Status = status
	switch status {
	case models.OrderStatusDelivered:
		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
	case models.OrderStatusPending, models.OrderStatusShipped, models.OrderStatusCancelled:
		order.IsDelivered = false
	}
	order.UpdatedAt = time.Now()

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, Internal("error updating order", err)
	}
	return order, nil
}

// Delete removes an order.
func (s *AdminOrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("Order not found")
		}
		return Internal("error deleting order", err)
	}
	return nil
}
