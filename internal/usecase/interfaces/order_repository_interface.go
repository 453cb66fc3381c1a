package interfaces

import (
	"context"
	"time"

	"dukaprint/internal/domain/entities"
)

// OrderFilter narrows order listings. Zero values mean "no constraint".
type OrderFilter struct {
	Status     entities.OrderStatus
	CustomerID string
	From       time.Time
	To         time.Time
}

// IOrderRepository abstracts DynamoDB persistence for orders.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, f OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	CountByCustomerID(ctx context.Context, customerID string) (int, error)
}
