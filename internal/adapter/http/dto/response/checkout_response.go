package response

import "konkred_vault/internal/usecase"

// CheckoutResponse hands the buyer over to the processor's hosted payment
// page and echoes the payment id for client-side polling.
type CheckoutResponse struct {
	URL       string `json:"url"`
	PaymentID string `json:"paymentId"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{URL: r.URL, PaymentID: r.PaymentID}
}
