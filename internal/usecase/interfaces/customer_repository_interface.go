package interfaces

import (
	"context"

	"dukaprint/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for customers.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) (entities.Customer, error)
	// Search matches name or phone fragments, capped at limit results.
	Search(ctx context.Context, query string, limit int) ([]entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
