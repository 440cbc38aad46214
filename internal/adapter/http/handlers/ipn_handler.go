package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"konkred_vault/internal/adapter/http/middleware"
	"konkred_vault/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the HMAC-SHA512 hex digest of the raw IPN body.
const SignatureHeader = "x-nowpayments-sig"

// IPNHandler receives asynchronous payment notifications from the processor.
//
// Response contract: always HTTP 200, on every outcome. The processor has no
// useful recovery action, and a non-200 only escalates its retry/backoff.
// Genuine errors surface through logs and the ipn_processed_total metric;
// lost writes are recovered out-of-band via the payment-status query API.

type IPNHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewIPNHandler(uc usecase.ISettlementUseCase) *IPNHandler {
	return &IPNHandler{usecase: uc}
}

func (h *IPNHandler) HandleNotification(c *gin.Context) {
	// The raw bytes must reach verification untouched; any JSON round trip
	// would invalidate the signature.
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[ipn][handler] body read failed err=%v", err)
		middleware.RecordIPNProcessed("body_read_error")
		c.String(http.StatusOK, "OK")
		return
	}
	signature := c.GetHeader(SignatureHeader)

	_, err = h.usecase.ProcessNotification(c.Request.Context(), rawBody, signature)
	middleware.RecordIPNProcessed(ipnOutcome(err))

	c.String(http.StatusOK, "OK")
}

func ipnOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, usecase.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, usecase.ErrMalformedNotification):
		return "malformed_payload"
	case errors.Is(err, usecase.ErrMalformedOrderID):
		return "malformed_order_id"
	case errors.Is(err, usecase.ErrNotificationPersistence):
		return "storage_error"
	default:
		return "error"
	}
}
