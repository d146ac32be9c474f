package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/store"
)

// OrderService serves a buyer's own order history.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// MyOrders lists the owner's orders, most recent first.
func (s *OrderService) MyOrders(ctx context.Context, owner primitive.ObjectID) ([]models.Order, error) {
	orders, err := s.orders.FindByOwner(ctx, owner)
	if err != nil {
		return nil, Internal("error fetching orders", err)
	}
	if len(orders) == 0 {
		return nil, NotFound("No orders found")
	}
	return orders, nil
}

// Details returns one order by id.
func (s *OrderService) Details(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Order not found")
		}
		return nil, Internal("error fetching order", err)
	}
	return order, nil
}
