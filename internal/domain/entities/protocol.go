package entities

import "time"

// ProtocolComplexity classifies a protocol bundle tier.

type ProtocolComplexity string

const (
	ProtocolComplexityStandard   ProtocolComplexity = "standard"
	ProtocolComplexityAdvanced   ProtocolComplexity = "advanced"
	ProtocolComplexityEnterprise ProtocolComplexity = "enterprise"
)

// Protocol is a paid downloadable content bundle from the storefront catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PriceCents holds the charge amount in minor units; the checkout flow
//     converts to major units before calling the payment processor.
type Protocol struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Tagline     string             `json:"tagline"`
	Description string             `json:"description"`
	PriceCents  int64              `json:"price_cents"`
	Industry    string             `json:"industry"`
	Complexity  ProtocolComplexity `json:"complexity"`
	FileURL     string             `json:"file_url"`
	CreatedAt   time.Time          `json:"created_at"`
	IsFeatured  bool               `json:"is_featured"`
}
