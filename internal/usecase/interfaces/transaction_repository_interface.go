package interfaces

import (
	"context"
	"time"

	"dukaprint/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for the financial
// ledger (sales, refunds).
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Transaction, error)
}
