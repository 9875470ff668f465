package interfaces

import (
	"context"
	"smart_oficina/internal/domain/entities"
)

// IPartsInventoryGateway abstracts the external parts service.
//
// The OS service uses it for the advisory full-cart availability check and for
// the blocking single-item stock check raised when a part is picked.
type IPartsInventoryGateway interface {
	CheckAvailability(ctx context.Context, items []entities.PartAvailabilityQuery) (entities.PartsAvailabilityResult, error)
	GetPartStock(ctx context.Context, partID string) (entities.PartStock, error)
}
