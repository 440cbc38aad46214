package interfaces

import (
	"context"

	"konkred_vault/internal/domain/entities"
)

// IProtocolRepository abstracts read access to the protocol catalog.
//
// The settlement pipeline only needs ID lookup; catalog management lives in
// a separate service.
type IProtocolRepository interface {
	GetByID(ctx context.Context, id string) (entities.Protocol, error)
}
