package interfaces

import (
	"context"
	"smart_oficina/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The OS service must be able to:
//   - create an order at intake with a sequential display number
//   - load an order by id or by its opaque approval token
//   - replace the aggregate after a validated transition
//   - delete an order removed from the list view

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByApprovalToken(ctx context.Context, token string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	NextOrderNumber(ctx context.Context) (int64, error)
}
