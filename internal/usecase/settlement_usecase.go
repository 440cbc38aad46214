package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"
)

var (
	ErrInvalidSignature        = errors.New("invalid ipn signature")
	ErrMalformedNotification   = errors.New("malformed ipn payload")
	ErrNotificationPersistence = errors.New("entitlement write failed")
)

// ISettlementUseCase turns a verified payment notification into a durable
// entitlement state. Deliveries are at-least-once and unordered; processing
// is idempotent and never relies on the processor's retry policy.

type ISettlementUseCase interface {
	ProcessNotification(ctx context.Context, rawBody []byte, signature string) (entities.Entitlement, error)
}

type SettlementUseCase struct {
	entitlements interfaces.IEntitlementRepository
	gateway      interfaces.IPaymentGateway
	publisher    interfaces.IEntitlementEventPublisher
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(entitlements interfaces.IEntitlementRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEntitlementEventPublisher) *SettlementUseCase {
	return &SettlementUseCase{entitlements: entitlements, gateway: gateway, publisher: publisher}
}

// ProcessNotification verifies, parses, correlates and reconciles one IPN
// delivery. Verification runs on the raw bytes as received; re-serializing
// parsed JSON would change key order and whitespace and break the HMAC.
func (u *SettlementUseCase) ProcessNotification(ctx context.Context, rawBody []byte, signature string) (entities.Entitlement, error) {
	if u.gateway == nil {
		return entities.Entitlement{}, errors.New("payment gateway not configured")
	}
	if u.entitlements == nil {
		return entities.Entitlement{}, errors.New("entitlement repository not configured")
	}

	if !u.gateway.VerifyIPNSignature(rawBody, signature) {
		log.Printf("[settlement][usecase] SIGNATURE MISMATCH body_len=%d", len(rawBody))
		return entities.Entitlement{}, ErrInvalidSignature
	}

	var n entities.PaymentNotification
	if err := json.Unmarshal(rawBody, &n); err != nil {
		log.Printf("[settlement][usecase] payload unmarshal failed err=%v", err)
		return entities.Entitlement{}, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}
	if n.PaymentID == "" {
		log.Printf("[settlement][usecase] payload missing payment_id order_id=%q", n.OrderID)
		return entities.Entitlement{}, fmt.Errorf("%w: missing payment_id", ErrMalformedNotification)
	}

	userID, protocolID, err := ParseOrderID(n.OrderID)
	if err != nil {
		log.Printf("[settlement][usecase] malformed order_id=%q payment_id=%s", n.OrderID, n.PaymentID)
		return entities.Entitlement{}, err
	}

	status := entities.PaymentStatus(n.PaymentStatus)
	needsReview := underpaid(n)
	if needsReview {
		log.Printf("[settlement][usecase] AMOUNT MISMATCH payment_id=%s pay_amount=%v actually_paid=%v", n.PaymentID, n.PayAmount.Float64(), n.ActuallyPaid.Float64())
	}

	ent, err := u.entitlements.Apply(ctx, interfaces.EntitlementWrite{
		PaymentID:   n.PaymentID,
		UserID:      userID,
		ProtocolID:  protocolID,
		Status:      status,
		NeedsReview: needsReview,
	})
	if err != nil {
		log.Printf("[settlement][usecase] entitlement write failed payment_id=%s status=%s err=%v", n.PaymentID, status, err)
		return entities.Entitlement{}, fmt.Errorf("%w: %v", ErrNotificationPersistence, err)
	}
	log.Printf("[settlement][usecase] reconciled payment_id=%s status=%s user_id=%s protocol_id=%s acquired=%t", ent.PaymentID, ent.PaymentStatus, ent.UserID, ent.ProtocolID, ent.AcquiredAt != nil)

	if u.publisher != nil {
		if err := u.publisher.PublishEntitlementChanged(ctx, ent); err != nil {
			log.Printf("[settlement][usecase] event publish failed payment_id=%s err=%v", ent.PaymentID, err)
		}
	}

	return ent, nil
}

// underpaid flags a success-terminal notification whose received amount is
// short of the expected pay-currency amount. Both figures are echoed by the
// processor in the same currency, so the comparison needs no conversion.
func underpaid(n entities.PaymentNotification) bool {
	if entities.PaymentStatus(n.PaymentStatus) != entities.PaymentStatusFinished {
		return false
	}
	expected := n.PayAmount.Float64()
	paid := n.ActuallyPaid.Float64()
	if expected <= 0 || paid <= 0 {
		return false
	}
	return paid+1e-9 < expected
}
