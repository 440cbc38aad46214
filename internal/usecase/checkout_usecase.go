package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID          = errors.New("invalid user id")
	ErrInvalidProtocolID      = errors.New("invalid protocol id")
	ErrProtocolNotFound       = errors.New("protocol not found")
	ErrProtocolNotPurchasable = errors.New("protocol has no purchasable price")
)

// CheckoutConfig carries the storefront-side parameters of a payment request.
// PayCurrency defaults to a stablecoin; the three URLs point back at this
// deployment.
type CheckoutConfig struct {
	PriceCurrency  string
	PayCurrency    string
	IPNCallbackURL string
	SuccessURL     string
	CancelURL      string
}

// CheckoutResult is what the storefront needs to hand the buyer over to the
// processor's hosted payment page.
type CheckoutResult struct {
	PaymentID string
	URL       string
}

// ICheckoutUseCase encapsulates checkout initiation: catalog lookup, charge
// computation, payment creation and the optimistic pending entitlement write.

type ICheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, userID, protocolID string) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	entitlements interfaces.IEntitlementRepository
	protocols    interfaces.IProtocolRepository
	gateway      interfaces.IPaymentGateway
	cfg          CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(entitlements interfaces.IEntitlementRepository, protocols interfaces.IProtocolRepository, gateway interfaces.IPaymentGateway, cfg CheckoutConfig) *CheckoutUseCase {
	if cfg.PriceCurrency == "" {
		cfg.PriceCurrency = "usd"
	}
	if cfg.PayCurrency == "" {
		cfg.PayCurrency = "usdt"
	}
	return &CheckoutUseCase{entitlements: entitlements, protocols: protocols, gateway: gateway, cfg: cfg}
}

func (u *CheckoutUseCase) InitiateCheckout(ctx context.Context, userID, protocolID string) (CheckoutResult, error) {
	userID = strings.TrimSpace(userID)
	protocolID = strings.TrimSpace(protocolID)
	log.Printf("[checkout][usecase] initiate start user_id=%s protocol_id=%s", userID, protocolID)

	if userID == "" {
		return CheckoutResult{}, ErrInvalidUserID
	}
	if protocolID == "" {
		return CheckoutResult{}, ErrInvalidProtocolID
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}
	if u.protocols == nil {
		return CheckoutResult{}, errors.New("protocol repository not configured")
	}

	orderID, err := NewOrderID(userID, protocolID, time.Now().UTC())
	if err != nil {
		log.Printf("[checkout][usecase] unsafe identifier user_id=%s protocol_id=%s", userID, protocolID)
		return CheckoutResult{}, err
	}

	protocol, err := u.protocols.GetByID(ctx, protocolID)
	if err != nil {
		log.Printf("[checkout][usecase] catalog lookup failed protocol_id=%s err=%v", protocolID, err)
		return CheckoutResult{}, err
	}
	if protocol.ID == "" {
		log.Printf("[checkout][usecase] protocol not found protocol_id=%s", protocolID)
		return CheckoutResult{}, ErrProtocolNotFound
	}
	if protocol.PriceCents <= 0 {
		log.Printf("[checkout][usecase] protocol not purchasable protocol_id=%s price_cents=%d", protocolID, protocol.PriceCents)
		return CheckoutResult{}, ErrProtocolNotPurchasable
	}

	req := entities.PaymentRequest{
		PriceAmount:      float64(protocol.PriceCents) / 100,
		PriceCurrency:    u.cfg.PriceCurrency,
		PayCurrency:      u.cfg.PayCurrency,
		OrderID:          orderID,
		OrderDescription: fmt.Sprintf("Executive Protocol: %s", protocol.Title),
		IPNCallbackURL:   u.cfg.IPNCallbackURL,
		SuccessURL:       u.cfg.SuccessURL,
		CancelURL:        u.cfg.CancelURL,
	}

	// Payment creation is not safe to retry: a duplicate request creates a
	// second processor payment object for the same purchase intent.
	resp, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] payment gateway failed user_id=%s protocol_id=%s err=%v", userID, protocolID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] payment created user_id=%s protocol_id=%s payment_id=%s status=%s", userID, protocolID, resp.PaymentID, resp.PaymentStatus)

	status := entities.PaymentStatus(resp.PaymentStatus)
	if status == "" {
		status = entities.PaymentStatusWaiting
	}

	// Best-effort: the reconciler can create the row from the first
	// notification, so a failed pending write must not block the buyer.
	if u.entitlements != nil {
		if _, err := u.entitlements.Apply(ctx, interfaces.EntitlementWrite{
			PaymentID:  resp.PaymentID,
			UserID:     userID,
			ProtocolID: protocolID,
			Status:     status,
		}); err != nil {
			log.Printf("[checkout][usecase] pending entitlement write failed payment_id=%s user_id=%s protocol_id=%s err=%v", resp.PaymentID, userID, protocolID, err)
		}
	}

	return CheckoutResult{PaymentID: resp.PaymentID, URL: resp.PurchaseURL}, nil
}
