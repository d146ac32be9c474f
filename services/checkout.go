package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/payment"
	"brandm-backend/store"
)

const paymentMethodStripe = "stripe"

// errAlreadyFinalized is compared by identity so Verify can recover when a
// concurrent call finalized first.
var errAlreadyFinalized = &Error{Kind: KindInvalid, Message: "Checkout is already finalized"}

// CheckoutService orchestrates the staged-purchase workflow: open a gateway
// session, verify payment, and materialize the order exactly once.
type CheckoutService struct {
	checkouts   CheckoutStore
	orders      OrderStore
	carts       CartStore
	gateway     payment.Gateway
	mail        Mailer
	frontendURL string
}

func NewCheckoutService(checkouts CheckoutStore, orders OrderStore, carts CartStore, gateway payment.Gateway, mail Mailer, frontendURL string) *CheckoutService {
	return &CheckoutService{
		checkouts:   checkouts,
		orders:      orders,
		carts:       carts,
		gateway:     gateway,
		mail:        mail,
		frontendURL: frontendURL,
	}
}

// CreateCheckoutResult is the redirect target handed back to the buyer.
type CreateCheckoutResult struct {
	CheckoutID primitive.ObjectID `json:"checkoutId"`
	SessionID  string             `json:"sessionId"`
	URL        string             `json:"url"`
}

// VerifyResult reports the outcome of a payment verification.
type VerifyResult struct {
	Message  string           `json:"message"`
	Checkout *models.Checkout `json:"checkout"`
	Order    *models.Order    `json:"order"`
}

// Create stages a checkout and opens a gateway session carrying the same line
// items plus a metadata back-reference. The checkout id is generated up front
// so the document is written once, already holding the session id; a gateway
// failure therefore leaves nothing behind.
func (s *CheckoutService) Create(ctx context.Context, owner primitive.ObjectID, req models.CreateCheckoutRequest) (*CreateCheckoutResult, error) {
	checkoutID := primitive.NewObjectID()

	lineItems := make([]payment.LineItem, 0, len(req.CheckoutItems))
	for _, item := range req.CheckoutItems {
		lineItems = append(lineItems, payment.LineItem{
			Name:       item.Name,
			Image:      item.Image,
			Currency:   "usd",
			UnitAmount: toMinorUnits(item.Price),
			Quantity:   int64(item.Quantity),
		})
	}

	session, err := s.gateway.CreateSession(ctx, payment.SessionParams{
		LineItems:     lineItems,
		SuccessURL:    s.frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     fmt.Sprintf("%s/checkout/cancel?checkout_id=%s", s.frontendURL, checkoutID.Hex()),
		CustomerEmail: req.CustomerEmail,
		Metadata: map[string]string{
			"checkoutId": checkoutID.Hex(),
			"userId":     owner.Hex(),
		},
	})
	if err != nil {
		return nil, Upstream("Failed to create checkout session", err)
	}

	now := time.Now()
	checkout := &models.Checkout{
		ID:              checkoutID,
		User:            models.OrderUser{ID: owner, Name: req.Username},
		CheckoutItems:   req.CheckoutItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   paymentMethodStripe,
		TotalPrice:      req.TotalPrice,
		CustomerEmail:   req.CustomerEmail,
		StripeSessionID: session.ID,
		IsPaid:          false,
		PaymentStatus:   models.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.checkouts.Insert(ctx, checkout); err != nil {
		return nil, Internal("error creating checkout", err)
	}

	return &CreateCheckoutResult{
		CheckoutID: checkoutID,
		SessionID:  session.ID,
		URL:        session.URL,
	}, nil
}

// Verify fetches the gateway session and, if payment was captured, marks the
// checkout paid and finalizes it. Calling it again after success returns the
// previously created order. Any non-captured gateway status is persisted and
// surfaced as a failure; the checkout stays retriable.
func (s *CheckoutService) Verify(ctx context.Context, owner primitive.ObjectID, sessionID string) (*VerifyResult, error) {
	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			return nil, NotFound("Payment session not found")
		}
		return nil, Upstream("Failed to retrieve payment session", err)
	}

	checkout, err := s.checkouts.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Checkout not found")
		}
		return nil, Internal("error fetching checkout", err)
	}

	if checkout.User.ID != owner {
		return nil, Forbidden("Unauthorized access to checkout")
	}

	if checkout.IsPaid {
		return s.alreadyProcessed(ctx, owner, sessionID, checkout)
	}

	if session.PaymentStatus != payment.PaymentStatusPaid {
		checkout.PaymentStatus = session.PaymentStatus
		checkout.UpdatedAt = time.Now()
		if err := s.checkouts.Save(ctx, checkout); err != nil {
			return nil, Internal("error updating checkout", err)
		}
		return nil, Invalid("Payment not completed. Status: %s", session.PaymentStatus)
	}

	now := time.Now()
	currency := session.Currency
	if currency == "" {
		currency = "usd"
	}
	checkout.IsPaid = true
	checkout.PaidAt = &now
	checkout.PaymentStatus = models.PaymentStatusPaid
	checkout.PaymentDetails = &models.PaymentDetails{
		StripeSessionID:       session.ID,
		StripePaymentIntentID: session.PaymentIntentID,
		Amount:                fromMinorUnits(session.AmountTotal),
		Currency:              currency,
	}
	checkout.UpdatedAt = now
	if err := s.checkouts.Save(ctx, checkout); err != nil {
		return nil, Internal("error updating checkout", err)
	}

	order, err := s.Finalize(ctx, checkout.ID)
	if err != nil {
		if errors.Is(err, errAlreadyFinalized) {
			// A concurrent Verify won the finalize transition.
			return s.alreadyProcessed(ctx, owner, sessionID, checkout)
		}
		return nil, err
	}

	return &VerifyResult{Message: "Payment verified and order created", Checkout: checkout, Order: order}, nil
}

func (s *CheckoutService) alreadyProcessed(ctx context.Context, owner primitive.ObjectID, sessionID string, checkout *models.Checkout) (*VerifyResult, error) {
	order, err := s.orders.FindBySessionID(ctx, owner, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("error fetching order", err)
	}
	return &VerifyResult{Message: "Payment already processed", Checkout: checkout, Order: order}, nil
}

// Finalize turns a paid checkout into an order. The finalized flag is flipped
// with a single conditional write, so duplicate invocations are rejected
// instead of producing duplicate orders. Deleting the buyer's cart is
// best-effort.
func (s *CheckoutService) Finalize(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Checkout not found")
		}
		return nil, Internal("error fetching checkout", err)
	}

	if !checkout.IsPaid {
		return nil, Invalid("Checkout is not paid yet")
	}
	if checkout.IsFinalized {
		return nil, errAlreadyFinalized
	}

	now := time.Now()
	won, err := s.checkouts.MarkFinalized(ctx, id, now)
	if err != nil {
		return nil, Internal("error finalizing checkout", err)
	}
	if !won {
		return nil, errAlreadyFinalized
	}
	checkout.IsFinalized = true
	checkout.FinalizedAt = &now

	orderItems := make([]models.OrderItem, 0, len(checkout.CheckoutItems))
	for _, item := range checkout.CheckoutItems {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		User:            checkout.User,
		OrderItems:      orderItems,
		ShippingAddress: checkout.ShippingAddress,
		PaymentMethod:   checkout.PaymentMethod,
		TotalPrice:      checkout.TotalPrice,
		IsPaid:          true,
		PaidAt:          checkout.PaidAt,
		IsDelivered:     false,
		PaymentStatus:   checkout.PaymentStatus,
		PaymentDetails:  checkout.PaymentDetails,
		Status:          models.OrderStatusProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	orderID, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, Internal("error creating order", err)
	}
	order.ID = orderID

	if err := s.carts.DeleteByOwner(ctx, checkout.User.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to clear cart for user %s: %v", checkout.User.ID.Hex(), err)
	}

	if s.mail != nil {
		go func(email string, order models.Order) {
			if err := s.mail.SendOrderConfirmation(email, &order); err != nil {
				log.Printf("Failed to send order confirmation to %s: %v", email, err)
			}
		}(checkout.CustomerEmail, *order)
	}

	return order, nil
}

// AdminUpdate is the out-of-band correction of payment status and details. A
// paid-equivalent status also sets the paid flag, but never triggers finalize.
func (s *CheckoutService) AdminUpdate(ctx context.Context, id primitive.ObjectID, req models.UpdateCheckoutRequest) (*models.Checkout, error) {
	checkout, err := s.checkouts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Checkout not found")
		}
		return nil, Internal("error fetching checkout", err)
	}

	checkout.PaymentStatus = req.PaymentStatus
	if models.PaidEquivalent(req.PaymentStatus) {
		now := time.Now()
		checkout.IsPaid = true
		checkout.PaidAt = &now
		if req.PaymentDetails != nil {
			checkout.PaymentDetails = req.PaymentDetails
		}
	}
	checkout.UpdatedAt = time.Now()

	if err := s.checkouts.Save(ctx, checkout); err != nil {
		return nil, Internal("error updating checkout", err)
	}
	return checkout, nil
}

// toMinorUnits converts decimal dollars to cents.
func toMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// fromMinorUnits converts the gateway's cent amounts to decimal dollars.
func fromMinorUnits(amount int64) float64 {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).InexactFloat64()
}
