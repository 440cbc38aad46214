package routes

import (
	"konkred_vault/internal/adapter/http/handlers"
	"konkred_vault/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout     = "/checkout"
	PathWebhook      = "/webhook"
	PathEntitlements = "/entitlements"
	PathProtocols    = "/protocols"
)

func addStorefrontRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, ipnHandler *handlers.IPNHandler, entitlementHandler *handlers.EntitlementHandler, protocolHandler *handlers.ProtocolHandler) {
	// The webhook authenticates by HMAC signature, not session.
	rg.POST(PathWebhook+"/nowpayments", ipnHandler.HandleNotification)

	rg.GET(PathProtocols+"/:id", protocolHandler.GetByID)

	authed := rg.Group("", middleware.RequireAuth())
	{
		authed.POST(PathCheckout, checkoutHandler.InitiateCheckout)
		authed.GET(PathEntitlements, entitlementHandler.ListMine)
	}
}
