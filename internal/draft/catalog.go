package draft

import (
	"context"
	"fmt"

	"dukaprint/internal/domain/entities"
)

// CatalogSource provides the backend reads the register needs to offer
// services and products for sale.
type CatalogSource interface {
	FetchServices(ctx context.Context) ([]entities.Service, error)
	FetchInventory(ctx context.Context) ([]entities.InventoryItem, error)
}

// Cache holds a point-in-time copy of the sellable catalog. The snapshot
// is replaced wholesale by Refresh; there is no TTL and no partial update.
// A failed Refresh keeps whatever was last loaded, so a register that
// starts offline simply has nothing to sell until a refresh succeeds.
type Cache struct {
	src      CatalogSource
	services []entities.Service
	products []entities.InventoryItem
}

func NewCache(src CatalogSource) *Cache {
	return &Cache{src: src}
}

// Refresh reloads both catalog halves from the source. Either fetch
// failing aborts the whole refresh and leaves the previous snapshot in
// place.
func (c *Cache) Refresh(ctx context.Context) error {
	services, err := c.src.FetchServices(ctx)
	if err != nil {
		return fmt.Errorf("load services: %w", err)
	}
	products, err := c.src.FetchInventory(ctx)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	c.services = services
	c.products = products
	return nil
}

func (c *Cache) Services() []entities.Service {
	return c.services
}

func (c *Cache) Products() []entities.InventoryItem {
	return c.products
}

func (c *Cache) ServiceByID(id string) (entities.Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Service{}, false
}

func (c *Cache) ProductByID(id string) (entities.InventoryItem, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.InventoryItem{}, false
}
