package usecase

import (
	"context"
	"errors"
	"strings"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase/interfaces"
)

var (
	ErrInvalidPartID        = errors.New("invalid part id")
	ErrInvalidPartQuantity  = errors.New("invalid part quantity")
	ErrPartsGatewayNotReady = errors.New("parts gateway not configured")
)

// IInventoryUseCase exposes the two availability checks of the diagnosis
// stage: the advisory full-cart batch and the blocking single-item variant
// raised when an inventory part is picked. Both run through one shared
// evaluation so the "requested qty <= stock" rule lives in a single place.

type IInventoryUseCase interface {
	CheckOrderAvailability(ctx context.Context, serviceOrderID string) (entities.PartsAvailabilityResult, error)
	CheckPartStock(ctx context.Context, partID string, quantity int) (entities.PartStockCheck, error)
}

type InventoryUseCase struct {
	repo    interfaces.IServiceOrderRepository
	gateway interfaces.IPartsInventoryGateway
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IServiceOrderRepository, gateway interfaces.IPartsInventoryGateway) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, gateway: gateway}
}

// CheckOrderAvailability batches every inventory-backed required part of the
// order into a single gateway call. The answer is advisory; budget generation
// is never blocked by missing stock.
func (u *InventoryUseCase) CheckOrderAvailability(ctx context.Context, serviceOrderID string) (entities.PartsAvailabilityResult, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return entities.PartsAvailabilityResult{}, ErrInvalidServiceOrderID
	}
	if u.gateway == nil {
		return entities.PartsAvailabilityResult{}, ErrPartsGatewayNotReady
	}

	o, err := u.repo.GetByID(ctx, serviceOrderID)
	if err != nil {
		return entities.PartsAvailabilityResult{}, err
	}
	if o.ID == "" {
		return entities.PartsAvailabilityResult{}, ErrServiceOrderNotFound
	}

	parts := o.InventoryParts()
	if len(parts) == 0 {
		return entities.PartsAvailabilityResult{AllAvailable: true}, nil
	}

	queries := make([]entities.PartAvailabilityQuery, 0, len(parts))
	for _, p := range parts {
		queries = append(queries, entities.PartAvailabilityQuery{PartID: p.PartID, Quantity: p.Quantity})
	}

	result, err := u.gateway.CheckAvailability(ctx, queries)
	if err != nil {
		return entities.PartsAvailabilityResult{}, err
	}
	return evaluateAvailability(result), nil
}

// CheckPartStock is the blocking single-item check: it resolves the current
// stock of one part and reports whether the requested quantity fits.
func (u *InventoryUseCase) CheckPartStock(ctx context.Context, partID string, quantity int) (entities.PartStockCheck, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return entities.PartStockCheck{}, ErrInvalidPartID
	}
	if quantity <= 0 {
		return entities.PartStockCheck{}, ErrInvalidPartQuantity
	}
	if u.gateway == nil {
		return entities.PartStockCheck{}, ErrPartsGatewayNotReady
	}

	stock, err := u.gateway.GetPartStock(ctx, partID)
	if err != nil {
		return entities.PartStockCheck{}, err
	}

	single := evaluateAvailability(entities.PartsAvailabilityResult{
		Items: []entities.PartAvailability{{
			PartID:       stock.PartID,
			Requested:    quantity,
			CurrentStock: stock.CurrentStock,
			Available:    stock.CurrentStock >= quantity,
		}},
	})

	return entities.PartStockCheck{
		PartStock:  stock,
		Requested:  quantity,
		Sufficient: single.AllAvailable,
	}, nil
}

// evaluateAvailability normalizes a gateway answer: the aggregate flags are
// always re-derived from the per-item rows.
func evaluateAvailability(result entities.PartsAvailabilityResult) entities.PartsAvailabilityResult {
	result.AllAvailable = true
	result.HasMissingParts = false
	for _, it := range result.Items {
		if !it.Available || it.CurrentStock < it.Requested {
			result.AllAvailable = false
			result.HasMissingParts = true
		}
	}
	return result
}
