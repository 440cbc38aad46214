package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"konkred_vault/internal/adapter/http/handlers/mocks"
	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestIPNHandler_AlwaysAcknowledges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
	}{
		{"processed", nil},
		{"invalid signature", usecase.ErrInvalidSignature},
		{"malformed payload", usecase.ErrMalformedNotification},
		{"malformed order id", usecase.ErrMalformedOrderID},
		{"storage failure", usecase.ErrNotificationPersistence},
		{"unexpected failure", errors.New("boom")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockISettlementUseCase(ctrl)
			h := NewIPNHandler(uc)

			r := gin.New()
			r.POST("/v1/webhook/nowpayments", h.HandleNotification)

			uc.EXPECT().ProcessNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Entitlement{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhook/nowpayments", bytes.NewBufferString(`{"payment_id":"pp_1"}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("webhook must always answer 200, got %d", w.Code)
			}
			if w.Body.String() != "OK" {
				t.Fatalf("expected body OK, got %q", w.Body.String())
			}
		})
	}
}

func TestIPNHandler_PassesRawBodyAndSignatureThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewIPNHandler(uc)

	r := gin.New()
	r.POST("/v1/webhook/nowpayments", h.HandleNotification)

	// Whitespace and key order are signature-relevant, so the handler must
	// hand over the body byte for byte.
	raw := `{ "payment_id":"pp_1" , "order_id":"u1_p1_1"}`
	uc.EXPECT().ProcessNotification(gomock.Any(), []byte(raw), "deadbeef").Return(entities.Entitlement{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/nowpayments", bytes.NewBufferString(raw))
	req.Header.Set(SignatureHeader, "deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestIPNHandler_BodyReadFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewIPNHandler(uc)

	r := gin.New()
	r.POST("/v1/webhook/nowpayments", h.HandleNotification)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/nowpayments", failingReadCloser{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("webhook must answer 200 even when the body cannot be read, got %d", w.Code)
	}
}

func TestIPNOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{usecase.ErrInvalidSignature, "invalid_signature"},
		{usecase.ErrMalformedNotification, "malformed_payload"},
		{usecase.ErrMalformedOrderID, "malformed_order_id"},
		{usecase.ErrNotificationPersistence, "storage_error"},
		{errors.New("boom"), "error"},
	}
	for _, tc := range tests {
		if got := ipnOutcome(tc.err); got != tc.want {
			t.Fatalf("ipnOutcome(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
