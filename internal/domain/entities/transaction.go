package entities

import "time"

// TransactionType classifies money movements in the books.
type TransactionType string

const (
	TransactionTypeSale    TransactionType = "sale"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeRefund  TransactionType = "refund"
)

// Transaction is the financial record written when money actually moves,
// e.g. when an order's payment status reaches paid.
//
// Storage model (DynamoDB):
//   - PK: id
type Transaction struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id,omitempty"`
	Type            TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Expense is an operating cost (rent, utilities, supplies, salary).
type Expense struct {
	ID            string        `json:"id"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
