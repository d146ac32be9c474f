package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"brandm-backend/services"
	"brandm-backend/utils"
)

// OrderController handles a buyer's own order history
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// MyOrders lists the authenticated user's orders, most recent first
func (oc *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := oc.orders.MyOrders(ctx, owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// OrderDetails returns one order by id
func (oc *OrderController) OrderDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := oc.orders.Details(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}
