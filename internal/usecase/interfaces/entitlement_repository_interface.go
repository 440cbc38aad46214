package interfaces

import (
	"context"

	"konkred_vault/internal/domain/entities"
)

// EntitlementWrite is a single reconciliation decision applied to the store.
//
// All fields except Status are insert-only: on an existing row the store
// keeps its original user/protocol attribution and creation time. AcquiredAt
// handling is derived from Status inside the repository (set-once on the
// success-terminal status, never cleared).
type EntitlementWrite struct {
	PaymentID   string
	UserID      string
	ProtocolID  string
	Status      entities.PaymentStatus
	NeedsReview bool
}

// IEntitlementRepository abstracts DynamoDB persistence for Entitlement.
//
// Apply must be an atomic upsert keyed on the processor payment id: two
// concurrent first notifications for the same payment must converge on a
// single row, with the storage engine as the sole arbiter. A read-then-write
// sequence is not an acceptable implementation.
type IEntitlementRepository interface {
	Apply(ctx context.Context, w EntitlementWrite) (entities.Entitlement, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Entitlement, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Entitlement, error)
}
