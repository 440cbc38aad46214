package interfaces

import (
	"context"

	"konkred_vault/internal/domain/entities"
)

// IEntitlementEventPublisher notifies downstream consumers (access-control,
// fulfillment) about entitlement state changes. Publishing is best-effort:
// failures are logged by the caller and never affect the webhook ACK.
type IEntitlementEventPublisher interface {
	PublishEntitlementChanged(ctx context.Context, e entities.Entitlement) error
}
