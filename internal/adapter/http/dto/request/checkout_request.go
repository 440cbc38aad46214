package request

// CheckoutRequest starts a purchase for the authenticated user.
type CheckoutRequest struct {
	ProtocolID string `json:"protocolId" binding:"required"`
}
