package entities

import (
	"strconv"
	"strings"
	"time"
)

// PaymentStatus mirrors the NOWPayments payment lifecycle.
//
// Notifications may arrive out of order and more than once; the reconciler
// treats every status as applicable, so no ordering is encoded here beyond
// the terminal classification.

type PaymentStatus string

const (
	PaymentStatusWaiting       PaymentStatus = "waiting"
	PaymentStatusConfirming    PaymentStatus = "confirming"
	PaymentStatusConfirmed     PaymentStatus = "confirmed"
	PaymentStatusSending       PaymentStatus = "sending"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusFinished      PaymentStatus = "finished"
	PaymentStatusFailed        PaymentStatus = "failed"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusExpired       PaymentStatus = "expired"
)

// IsTerminal reports whether no further status progression is expected.
// The processor may still emit late refund/expire events after finished;
// those are applied as regular updates.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusFinished, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusExpired:
		return true
	}
	return false
}

// Entitlement grants a user access to a purchased protocol.
//
// Storage model (DynamoDB):
//   - PK: payment_id (processor payment identifier, the idempotency key)
//   - GSI1 (user_id-index): user_id
//
// AcquiredAt is set exactly once, when a payment first reaches the
// success-terminal status, and is never cleared by later notifications.
type Entitlement struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ProtocolID    string        `json:"protocol_id"`
	PaymentID     string        `json:"payment_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	NeedsReview   bool          `json:"needs_review,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	AcquiredAt    *time.Time    `json:"acquired_at,omitempty"`
}

// Amount tolerates both numeric and quoted-decimal encodings. NOWPayments
// documents numbers but its IPN payloads have been observed with string
// amounts, so the parser accepts either.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float64() float64 { return float64(a) }

// PaymentRequest is the outbound payment-creation payload sent to the
// processor. Amounts are in major units.
type PaymentRequest struct {
	PriceAmount      float64 `json:"price_amount"`
	PriceCurrency    string  `json:"price_currency"`
	PayCurrency      string  `json:"pay_currency"`
	OrderID          string  `json:"order_id"`
	OrderDescription string  `json:"order_description"`
	IPNCallbackURL   string  `json:"ipn_callback_url"`
	SuccessURL       string  `json:"success_url"`
	CancelURL        string  `json:"cancel_url"`
}

// PaymentResponse is the processor's payment-creation / payment-status
// response. Only the fields the pipeline consumes are mapped.
type PaymentResponse struct {
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
	PayAddress    string `json:"pay_address"`
	PriceAmount   Amount `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
	PayAmount     Amount `json:"pay_amount"`
	PayCurrency   string `json:"pay_currency"`
	OrderID       string `json:"order_id"`
	PurchaseURL   string `json:"purchase_url"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// PaymentNotification is the decoded IPN body. Untrusted until the raw body
// passed signature verification.
type PaymentNotification struct {
	PaymentID            string `json:"payment_id"`
	PaymentStatus        string `json:"payment_status"`
	PayAddress           string `json:"pay_address"`
	PriceAmount          Amount `json:"price_amount"`
	PriceCurrency        string `json:"price_currency"`
	PayAmount            Amount `json:"pay_amount"`
	ActuallyPaid         Amount `json:"actually_paid"`
	ActuallyPaidCurrency string `json:"actually_paid_currency"`
	PayCurrency          string `json:"pay_currency"`
	OrderID              string `json:"order_id"`
	OrderDescription     string `json:"order_description"`
	PurchaseID           string `json:"purchase_id"`
}
