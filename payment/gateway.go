package payment

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when the gateway does not know the session id.
var ErrSessionNotFound = errors.New("payment session not found")

// LineItem is one purchasable line sent to the gateway. UnitAmount is in the
// currency's minor units.
type LineItem struct {
	Name       string
	Image      string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// SessionParams describes the hosted checkout session to open.
type SessionParams struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// Session is the gateway's view of one checkout attempt. AmountTotal is in
// minor units.
type Session struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
}

// PaymentStatusPaid is the gateway status that allows a checkout to be marked
// paid. Everything else is persisted and surfaced as a failure.
const PaymentStatusPaid = "paid"

// Gateway is the hosted payment provider: open a session, read it back by id.
type Gateway interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}
