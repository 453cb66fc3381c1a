package interfaces

import (
	"context"
	"time"

	"dukaprint/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for operating expenses.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context, category string, from, to time.Time) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}
