package response

import (
	"time"

	"konkred_vault/internal/domain/entities"
)

// ProtocolResponse is the public catalog shape. FileURL is deliberately
// omitted: download links are only handed out through entitlement checks.
type ProtocolResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Industry    string    `json:"industry"`
	Complexity  string    `json:"complexity"`
	CreatedAt   time.Time `json:"created_at"`
	IsFeatured  bool      `json:"is_featured"`
}

func FromProtocol(p entities.Protocol) ProtocolResponse {
	return ProtocolResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Tagline:     p.Tagline,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Industry:    p.Industry,
		Complexity:  string(p.Complexity),
		CreatedAt:   p.CreatedAt,
		IsFeatured:  p.IsFeatured,
	}
}
