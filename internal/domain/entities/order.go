package entities

import "time"

// OrderStatus represents the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents how much of the order has been paid for.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodMpesa PaymentMethod = "mpesa"
	PaymentMethodCard  PaymentMethod = "card"
)

// ItemType discriminates order lines between catalog services and
// stock-backed inventory products.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

// Order is a sale persisted by the back office.
//
// Storage model (DynamoDB):
//   - PK: id
//
// FinalAmount is TotalAmount minus Discount and is the authoritative figure
// printed on the receipt. It is intentionally not clamped at zero: an
// over-discount records as a negative final amount (store credit style).
type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"order_number"`
	CustomerID      string        `json:"customer_id,omitempty"`
	Customer        *Customer     `json:"customer,omitempty"`
	RegisterID      string        `json:"register_id,omitempty"`
	TotalAmount     float64       `json:"total_amount"`
	Discount        float64       `json:"discount"`
	FinalAmount     float64       `json:"final_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Status          OrderStatus   `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	Items           []OrderItem   `json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
}

// OrderItem is a single line on an order. UnitPrice is the price captured
// at sale time, not a live catalog reference.
type OrderItem struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"order_id,omitempty"`
	ItemType   ItemType `json:"item_type"`
	ItemID     string   `json:"item_id"`
	ItemName   string   `json:"item_name"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price"`
}
