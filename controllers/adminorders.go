package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// AdminOrderController handles back-office order management
type AdminOrderController struct {
	orders *services.AdminOrderService
}

// NewAdminOrderController creates a new AdminOrderController
func NewAdminOrderController(orders *services.AdminOrderService) *AdminOrderController {
	return &AdminOrderController{orders: orders}
}

// ListOrders returns every order with the buyer's email joined in
func (ac *AdminOrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := ac.orders.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus sets an order's fulfillment status
func (ac *AdminOrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := ac.orders.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

// DeleteOrder removes an order
func (ac *AdminOrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.orders.Delete(ctx, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Order removed"})
}
