package handlers

import (
	"errors"
	"log"
	"net/http"

	request "konkred_vault/internal/adapter/http/dto/request"
	response "konkred_vault/internal/adapter/http/dto/response"
	"konkred_vault/internal/adapter/http/middleware"
	"konkred_vault/internal/usecase"
	"konkred_vault/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles purchase initiation for authenticated buyers.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// InitiateCheckout creates a processor payment for the requested protocol and
// returns the hosted payment page URL.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Protocol ID is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] start user_id=%s protocol_id=%s", userID, payload.ProtocolID)
	result, err := h.usecase.InitiateCheckout(c.Request.Context(), userID, payload.ProtocolID)
	if err != nil {
		log.Printf("[checkout][handler] failed user_id=%s protocol_id=%s err=%v", userID, payload.ProtocolID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success user_id=%s protocol_id=%s payment_id=%s", userID, payload.ProtocolID, result.PaymentID)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProtocolID), errors.Is(err, usecase.ErrUnsafeIdentifier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Protocol ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProtocolNotFound):
		return pkg.NewDomainErrorSimple("PROTOCOL_NOT_FOUND", "Protocol not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProtocolNotPurchasable):
		return pkg.NewDomainErrorSimple("PROTOCOL_NOT_PURCHASABLE", "Protocol is not purchasable", http.StatusConflict)
	default:
		// Processor failures are never retried here: retrying payment
		// creation risks a duplicate charge.
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
