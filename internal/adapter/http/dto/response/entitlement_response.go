package response

import (
	"time"

	"konkred_vault/internal/domain/entities"
)

type EntitlementResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ProtocolID    string     `json:"protocol_id"`
	PaymentID     string     `json:"payment_id"`
	PaymentStatus string     `json:"payment_status"`
	NeedsReview   bool       `json:"needs_review,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	AcquiredAt    *time.Time `json:"acquired_at,omitempty"`
}

func FromEntitlement(e entities.Entitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		ProtocolID:    e.ProtocolID,
		PaymentID:     e.PaymentID,
		PaymentStatus: string(e.PaymentStatus),
		NeedsReview:   e.NeedsReview,
		CreatedAt:     e.CreatedAt,
		AcquiredAt:    e.AcquiredAt,
	}
}

func FromEntitlements(items []entities.Entitlement) []EntitlementResponse {
	out := make([]EntitlementResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEntitlement(e))
	}
	return out
}
