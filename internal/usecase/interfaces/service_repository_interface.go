package interfaces

import (
	"context"

	"dukaprint/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for catalog services.
//
// Missing records come back as zero values with a nil error; use cases
// translate that into not-found errors.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, category string, activeOnly bool) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
}
