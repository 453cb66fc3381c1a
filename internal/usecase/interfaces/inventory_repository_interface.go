package interfaces

import (
	"context"

	"dukaprint/internal/domain/entities"
)

// IInventoryRepository abstracts DynamoDB persistence for stock items.
type IInventoryRepository interface {
	Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (entities.InventoryItem, error)
	List(ctx context.Context, category, search string) ([]entities.InventoryItem, error)
	Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
