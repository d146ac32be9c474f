package models

// Payment statuses tracked on a checkout. The gateway may report further
// values; they are persisted verbatim.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusPaid       = "paid"
	PaymentStatusFailed     = "failed"
	PaymentStatusExpired    = "expired"
)

// PaymentDetails records what the gateway captured. Amount is in decimal
// dollars, converted from the gateway's minor units.
type PaymentDetails struct {
	StripeSessionID       string  `bson:"stripeSessionId" json:"stripeSessionId"`
	StripePaymentIntentID string  `bson:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	Amount                float64 `bson:"amount" json:"amount"`
	Currency              string  `bson:"currency" json:"currency"`
}

// PaidEquivalent reports whether an admin-assigned status implies the checkout
// has been paid.
func PaidEquivalent(status string) bool {
	return status == PaymentStatusPaid || status == PaymentStatusCompleted
}
