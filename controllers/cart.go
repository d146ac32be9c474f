package controllers

import (
	"context"
	"net/http"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// CartController handles cart-related requests
type CartController struct {
	cart *services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GetCart retrieves the user's cart, creating an empty one on first access
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cart, err := cc.cart.Get(ctx, owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// AddToCart adds a product line to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cart, err := cc.cart.Add(ctx, owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// UpdateCartItem changes the quantity of one cart line
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateCartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cart, err := cc.cart.UpdateItem(ctx, owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

// RemoveFromCart removes one cart line
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateCartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cart, err := cc.cart.RemoveItem(ctx, owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}
