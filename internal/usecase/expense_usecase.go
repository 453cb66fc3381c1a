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
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidExpenseID = errors.New("invalid expense id")
	ErrInvalidExpense   = errors.New("category, description and amount are required")
)

// ExpenseCategories is the fixed list used for book-keeping.
var ExpenseCategories = []entities.ServiceCategory{
	{Value: "rent", Label: "Rent"},
	{Value: "utilities", Label: "Utilities"},
	{Value: "supplies", Label: "Supplies"},
	{Value: "salary", Label: "Salary"},
	{Value: "other", Label: "Other"},
}

type CreateExpenseInput struct {
	Category      string
	Description   string
	Amount        float64
	PaymentMethod string
	ReceiptNumber string
}

type UpdateExpenseInput struct {
	Category      *string
	Description   *string
	Amount        *float64
	PaymentMethod *string
	ReceiptNumber *string
}

type IExpenseUseCase interface {
	List(ctx context.Context, category string, from, to time.Time) ([]entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	Create(ctx context.Context, in CreateExpenseInput) (entities.Expense, error)
	Update(ctx context.Context, id string, in UpdateExpenseInput) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func (u *ExpenseUseCase) List(ctx context.Context, category string, from, to time.Time) ([]entities.Expense, error) {
	return u.repo.List(ctx, strings.TrimSpace(category), from, to)
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *ExpenseUseCase) Create(ctx context.Context, in CreateExpenseInput) (entities.Expense, error) {
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)
	if category == "" || description == "" || in.Amount <= 0 {
		return entities.Expense{}, ErrInvalidExpense
	}

	e := entities.Expense{
		ID:            uuid.NewString(),
		Category:      category,
		Description:   description,
		Amount:        in.Amount,
		PaymentMethod: paymentMethodOrDefault(in.PaymentMethod),
		ReceiptNumber: strings.TrimSpace(in.ReceiptNumber),
		CreatedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *ExpenseUseCase) Update(ctx context.Context, id string, in UpdateExpenseInput) (entities.Expense, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}

	if in.Category != nil {
		e.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return entities.Expense{}, ErrInvalidExpense
		}
		e.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		e.PaymentMethod = paymentMethodOrDefault(*in.PaymentMethod)
	}
	if in.ReceiptNumber != nil {
		e.ReceiptNumber = strings.TrimSpace(*in.ReceiptNumber)
	}

	return u.repo.Update(ctx, e)
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
