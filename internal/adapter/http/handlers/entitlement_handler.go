package handlers

import (
	"log"
	"net/http"

	response "konkred_vault/internal/adapter/http/dto/response"
	"konkred_vault/internal/adapter/http/middleware"
	"konkred_vault/internal/usecase/interfaces"
	"konkred_vault/pkg"

	"github.com/gin-gonic/gin"
)

// EntitlementHandler serves the caller's own entitlement rows (the vault).

type EntitlementHandler struct {
	entitlements interfaces.IEntitlementRepository
}

func NewEntitlementHandler(repo interfaces.IEntitlementRepository) *EntitlementHandler {
	return &EntitlementHandler{entitlements: repo}
}

func (h *EntitlementHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.entitlements.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[entitlement][handler] list failed user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEntitlements(items))
}
