package interfaces

import (
	"context"

	"konkred_vault/internal/domain/entities"
)

// IPaymentGateway abstracts the external crypto payment processor
// (NOWPayments).
//
// CreatePayment is not idempotent-safe on the processor side: a retried call
// may create two distinct payment objects for one purchase intent, so callers
// must never retry it blindly.
//
// VerifyIPNSignature operates on the exact raw bytes as received; the gateway
// owns the shared IPN secret.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error)
	VerifyIPNSignature(rawBody []byte, signature string) bool
}
