package request

import "dukaprint/internal/usecase"

type OrderItemRequest struct {
	ItemType  string  `json:"item_type" binding:"required,oneof=service product"`
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest is the payload a register submits when ringing up a
// draft. Prices are the register's captured prices; the server extends
// totals but does not re-price.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customer_id"`
	RegisterID      string             `json:"register_id"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	Discount        float64            `json:"discount"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentStatus   string             `json:"payment_status"`
	Notes           string             `json:"notes"`
	ReferenceNumber string             `json:"reference_number"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.CreateOrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.CreateOrderItemInput{
			ItemType:  it.ItemType,
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return usecase.CreateOrderInput{
		CustomerID:      r.CustomerID,
		RegisterID:      r.RegisterID,
		Items:           items,
		Discount:        r.Discount,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   r.PaymentStatus,
		Notes:           r.Notes,
		ReferenceNumber: r.ReferenceNumber,
	}
}

type UpdateOrderRequest struct {
	Status          *string `json:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	PaymentStatus   *string `json:"payment_status" binding:"omitempty,oneof=pending paid partial"`
	Notes           *string `json:"notes"`
	ReferenceNumber string  `json:"reference_number"`
}

func (r UpdateOrderRequest) ToInput() usecase.UpdateOrderInput {
	return usecase.UpdateOrderInput{
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		Notes:           r.Notes,
		ReferenceNumber: r.ReferenceNumber,
	}
}
