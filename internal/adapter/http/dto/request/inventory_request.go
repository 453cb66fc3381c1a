package request

import "dukaprint/internal/usecase"

type CreateItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	MinQuantity  *int    `json:"min_quantity"`
	UnitPrice    float64 `json:"unit_price"`
	SellingPrice float64 `json:"selling_price" binding:"required"`
	Supplier     string  `json:"supplier"`
}

func (r CreateItemRequest) ToInput() usecase.CreateItemInput {
	return usecase.CreateItemInput{
		Name:         r.Name,
		Category:     r.Category,
		SKU:          r.SKU,
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
		UnitPrice:    r.UnitPrice,
		SellingPrice: r.SellingPrice,
		Supplier:     r.Supplier,
	}
}

type UpdateItemRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	SKU          *string  `json:"sku"`
	Quantity     *int     `json:"quantity"`
	MinQuantity  *int     `json:"min_quantity"`
	UnitPrice    *float64 `json:"unit_price"`
	SellingPrice *float64 `json:"selling_price"`
	Supplier     *string  `json:"supplier"`
}

func (r UpdateItemRequest) ToInput() usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		Name:         r.Name,
		Category:     r.Category,
		SKU:          r.SKU,
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
		UnitPrice:    r.UnitPrice,
		SellingPrice: r.SellingPrice,
		Supplier:     r.Supplier,
	}
}

// AdjustStockRequest receives goods in or writes spoiled stock off.
type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required"`
	Operation string `json:"operation" binding:"required,oneof=add remove"`
}
