package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidItemID  = errors.New("invalid item id")
	ErrInvalidItem    = errors.New("name, category, unit_price and selling_price are required")
	ErrSKUExists      = errors.New("sku already exists")
	ErrInvalidStockOp = errors.New("invalid stock operation")
)

// InventoryCategories is the fixed list the shop stocks.
var InventoryCategories = []entities.ServiceCategory{
	{Value: "stationery", Label: "Stationery"},
	{Value: "supplies", Label: "Office Supplies"},
	{Value: "equipment", Label: "Equipment"},
	{Value: "consumables", Label: "Consumables"},
	{Value: "other", Label: "Other"},
}

// Stock adjustment operations.
const (
	StockOpAdd    = "add"
	StockOpRemove = "remove"
)

type CreateItemInput struct {
	Name         string
	Category     string
	SKU          string
	Quantity     int
	MinQuantity  *int
	UnitPrice    float64
	SellingPrice float64
	Supplier     string
}

type UpdateItemInput struct {
	Name         *string
	Category     *string
	SKU          *string
	Quantity     *int
	MinQuantity  *int
	UnitPrice    *float64
	SellingPrice *float64
	Supplier     *string
}

type IInventoryUseCase interface {
	List(ctx context.Context, category, search string, lowStockOnly bool) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Create(ctx context.Context, in CreateItemInput) (entities.InventoryItem, error)
	Update(ctx context.Context, id string, in UpdateItemInput) (entities.InventoryItem, error)
	AdjustStock(ctx context.Context, id string, quantity int, op string) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) List(ctx context.Context, category, search string, lowStockOnly bool) ([]entities.InventoryItem, error) {
	items, err := u.repo.List(ctx, strings.TrimSpace(category), strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	if !lowStockOnly {
		return items, nil
	}
	low := make([]entities.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

func (u *InventoryUseCase) Create(ctx context.Context, in CreateItemInput) (entities.InventoryItem, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" || in.UnitPrice < 0 || in.SellingPrice < 0 {
		return entities.InventoryItem{}, ErrInvalidItem
	}

	sku := strings.TrimSpace(in.SKU)
	if sku != "" {
		existing, err := u.repo.GetBySKU(ctx, sku)
		if err != nil {
			return entities.InventoryItem{}, err
		}
		if existing.ID != "" {
			return entities.InventoryItem{}, ErrSKUExists
		}
	}

	minQty := 10
	if in.MinQuantity != nil {
		minQty = *in.MinQuantity
	}

	now := time.Now().UTC()
	item := entities.InventoryItem{
		ID:           uuid.NewString(),
		Name:         name,
		Category:     category,
		SKU:          sku,
		Quantity:     in.Quantity,
		MinQuantity:  minQty,
		UnitPrice:    in.UnitPrice,
		SellingPrice: in.SellingPrice,
		Supplier:     strings.TrimSpace(in.Supplier),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, item)
}

func (u *InventoryUseCase) Update(ctx context.Context, id string, in UpdateItemInput) (entities.InventoryItem, error) {
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku != "" && sku != item.SKU {
			existing, err := u.repo.GetBySKU(ctx, sku)
			if err != nil {
				return entities.InventoryItem{}, err
			}
			if existing.ID != "" && existing.ID != item.ID {
				return entities.InventoryItem{}, ErrSKUExists
			}
		}
		item.SKU = sku
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.SellingPrice != nil {
		item.SellingPrice = *in.SellingPrice
	}
	if in.Supplier != nil {
		item.Supplier = strings.TrimSpace(*in.Supplier)
	}
	item.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, item)
}

// AdjustStock adds received stock or removes spoiled/counted-out stock.
// Sales do not go through here; order creation decrements directly.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, id string, quantity int, op string) (entities.InventoryItem, error) {
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if quantity < 0 {
		return entities.InventoryItem{}, ErrInvalidStockOp
	}

	switch op {
	case StockOpAdd:
		item.Quantity += quantity
	case StockOpRemove:
		if item.Quantity < quantity {
			return entities.InventoryItem{}, ErrInsufficientStock
		}
		item.Quantity -= quantity
	default:
		return entities.InventoryItem{}, ErrInvalidStockOp
	}
	item.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, item)
}

func (u *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
