package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// CheckoutController handles the purchase workflow
type CheckoutController struct {
	checkout *services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// CreateCheckout stages a purchase and returns the payment redirect URL
func (cc *CheckoutController) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateCheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := cc.checkout.Create(ctx, owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

// VerifyPayment confirms a payment session and finalizes the checkout
func (cc *CheckoutController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.VerifyPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := cc.checkout.Verify(ctx, owner, req.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// FinalizeCheckout converts a paid checkout into an order (Admin only)
func (cc *CheckoutController) FinalizeCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := cc.checkout.Finalize(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, order)
}

// UpdateCheckout corrects payment status and details (Admin only)
func (cc *CheckoutController) UpdateCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req models.UpdateCheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	checkout, err := cc.checkout.AdminUpdate(ctx, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, checkout)
}
