package entities

import "time"

// ServiceCategory values match the fixed list offered by the shop UI.
type ServiceCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Service is a catalog entry for work the shop performs (printing, design,
// installations). Services are not stock-constrained.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Unit        string    `json:"unit"` // per_page, per_hour, per_project
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// InventoryItem is a stock-backed product sold over the counter.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity is the on-hand count; selling it below MinQuantity flags the
// item as low stock on the dashboard.
type InventoryItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"` // stationery, supplies, equipment, consumables, other
	SKU          string    `json:"sku,omitempty"`
	Quantity     int       `json:"quantity"`
	MinQuantity  int       `json:"min_quantity"`
	UnitPrice    float64   `json:"unit_price"` // acquisition cost
	SellingPrice float64   `json:"selling_price"`
	Supplier     string    `json:"supplier,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}
