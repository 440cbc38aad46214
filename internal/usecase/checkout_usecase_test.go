package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"
	mock_interfaces "konkred_vault/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCheckoutUseCase_InitiateCheckout_Validations(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, CheckoutConfig{})
		_, err := uc.InitiateCheckout(context.Background(), " ", "p1")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("empty protocol id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, CheckoutConfig{})
		_, err := uc.InitiateCheckout(context.Background(), "u1", "")
		if !errors.Is(err, ErrInvalidProtocolID) {
			t.Fatalf("expected ErrInvalidProtocolID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
		uc := NewCheckoutUseCase(nil, protocols, nil, CheckoutConfig{})

		_, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("unsafe identifier rejected before any call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, protocols, gateway, CheckoutConfig{})

		_, err := uc.InitiateCheckout(context.Background(), "u_1", "p1")
		if !errors.Is(err, ErrUnsafeIdentifier) {
			t.Fatalf("expected ErrUnsafeIdentifier, got %v", err)
		}
	})
}

func TestCheckoutUseCase_InitiateCheckout_CatalogChecks(t *testing.T) {
	t.Run("catalog lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, protocols, gateway, CheckoutConfig{})

		protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{}, errors.New("db"))

		_, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("protocol not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, protocols, gateway, CheckoutConfig{})

		protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{}, nil)

		_, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
		if !errors.Is(err, ErrProtocolNotFound) {
			t.Fatalf("expected ErrProtocolNotFound, got %v", err)
		}
	})

	t.Run("protocol without price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, protocols, gateway, CheckoutConfig{})

		protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{ID: "p1"}, nil)

		_, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
		if !errors.Is(err, ErrProtocolNotPurchasable) {
			t.Fatalf("expected ErrProtocolNotPurchasable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_InitiateCheckout_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	entitlements := mock_interfaces.NewMockIEntitlementRepository(ctrl)
	protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutUseCase(entitlements, protocols, gateway, CheckoutConfig{})

	protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{ID: "p1", Title: "Alpha", PriceCents: 9900}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResponse{}, errors.New("processor down"))

	// No pending write, no retry: payment creation is not idempotent-safe.
	_, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
	if err == nil || err.Error() != "processor down" {
		t.Fatalf("expected processor down, got %v", err)
	}
}

func TestCheckoutUseCase_InitiateCheckout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	entitlements := mock_interfaces.NewMockIEntitlementRepository(ctrl)
	protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutUseCase(entitlements, protocols, gateway, CheckoutConfig{
		IPNCallbackURL: "https://api.example.com/v1/webhook/nowpayments",
		SuccessURL:     "https://example.com/vault",
		CancelURL:      "https://example.com/protocols",
	})

	protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{ID: "p1", Title: "Arb Finance", PriceCents: 25000}, nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
			if req.PriceAmount != 250.0 {
				t.Fatalf("price should be converted to major units, got %v", req.PriceAmount)
			}
			if req.PriceCurrency != "usd" || req.PayCurrency != "usdt" {
				t.Fatalf("unexpected currency defaults: %s/%s", req.PriceCurrency, req.PayCurrency)
			}
			if !strings.HasPrefix(req.OrderID, "u1_p1_") {
				t.Fatalf("unexpected order id: %s", req.OrderID)
			}
			if req.OrderDescription != "Executive Protocol: Arb Finance" {
				t.Fatalf("unexpected description: %s", req.OrderDescription)
			}
			if req.IPNCallbackURL == "" || req.SuccessURL == "" || req.CancelURL == "" {
				t.Fatalf("callback urls must be populated")
			}
			return entities.PaymentResponse{
				PaymentID:     "pp_1",
				PaymentStatus: "waiting",
				PurchaseURL:   "https://nowpayments.io/payment/?iid=pp_1",
			}, nil
		},
	)

	entitlements.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w interfaces.EntitlementWrite) (entities.Entitlement, error) {
			if w.PaymentID != "pp_1" || w.UserID != "u1" || w.ProtocolID != "p1" {
				t.Fatalf("unexpected pending write: %+v", w)
			}
			if w.Status != entities.PaymentStatusWaiting {
				t.Fatalf("pending row should carry the processor's initial status, got %s", w.Status)
			}
			return entities.Entitlement{PaymentID: "pp_1"}, nil
		},
	)

	result, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentID != "pp_1" || result.URL != "https://nowpayments.io/payment/?iid=pp_1" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCheckoutUseCase_InitiateCheckout_PendingWriteFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	entitlements := mock_interfaces.NewMockIEntitlementRepository(ctrl)
	protocols := mock_interfaces.NewMockIProtocolRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutUseCase(entitlements, protocols, gateway, CheckoutConfig{})

	protocols.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Protocol{ID: "p1", Title: "Alpha", PriceCents: 1000}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResponse{PaymentID: "pp_2", PaymentStatus: "waiting", PurchaseURL: "https://pay"}, nil)
	entitlements.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(entities.Entitlement{}, errors.New("table offline"))

	// The reconciler can create the row from the first notification, so the
	// buyer still gets the payment URL.
	result, err := uc.InitiateCheckout(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentID != "pp_2" || result.URL != "https://pay" {
		t.Fatalf("unexpected result: %+v", result)
	}
}
