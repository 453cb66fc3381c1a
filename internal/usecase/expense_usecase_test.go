package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dukaprint/internal/domain/entities"
	mock_interfaces "dukaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase_Create(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.Create(context.Background(), CreateExpenseInput{Category: "rent", Amount: 100})
		if !errors.Is(err, ErrInvalidExpense) {
			t.Fatalf("expected ErrInvalidExpense, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.Create(context.Background(), CreateExpenseInput{Category: "rent", Description: "March rent"})
		if !errors.Is(err, ErrInvalidExpense) {
			t.Fatalf("expected ErrInvalidExpense, got %v", err)
		}
	})

	t.Run("success defaults payment method to cash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" {
					t.Errorf("expected generated id")
				}
				if e.PaymentMethod != entities.PaymentMethodCash {
					t.Errorf("expected cash default, got %q", e.PaymentMethod)
				}
				if e.Description != "March rent" {
					t.Errorf("expected trimmed description, got %q", e.Description)
				}
				return e, nil
			})

		got, err := uc.Create(context.Background(), CreateExpenseInput{
			Category: "rent", Description: " March rent ", Amount: 15000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 15000 {
			t.Fatalf("expected amount 15000, got %v", got.Amount)
		}
	})
}

func TestExpenseUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidExpenseID) {
			t.Fatalf("expected ErrInvalidExpenseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(entities.Expense{}, nil)

		if _, err := uc.GetByID(context.Background(), "exp-1"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestExpenseUseCase_Update(t *testing.T) {
	t.Run("rejects non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(entities.Expense{ID: "exp-1", Category: "rent"}, nil)

		amount := 0.0
		if _, err := uc.Update(context.Background(), "exp-1", UpdateExpenseInput{Amount: &amount}); !errors.Is(err, ErrInvalidExpense) {
			t.Fatalf("expected ErrInvalidExpense, got %v", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(entities.Expense{
			ID: "exp-1", Category: "rent", Description: "March rent", Amount: 15000,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.Expense) (entities.Expense, error) {
				if e.Amount != 16000 {
					t.Errorf("expected amount 16000, got %v", e.Amount)
				}
				if e.Category != "rent" {
					t.Errorf("expected category untouched, got %q", e.Category)
				}
				return e, nil
			})

		amount := 16000.0
		if _, err := uc.Update(context.Background(), "exp-1", UpdateExpenseInput{Amount: &amount}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExpenseUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "exp-9").Return(entities.Expense{}, nil)

		if err := uc.Delete(context.Background(), "exp-9"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(entities.Expense{ID: "exp-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "exp-1").Return(nil)

		if err := uc.Delete(context.Background(), "exp-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExpenseUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewExpenseUseCase(repo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	repo.EXPECT().List(gomock.Any(), "rent", from, to).Return([]entities.Expense{{ID: "exp-1"}}, nil)

	got, err := uc.List(context.Background(), " rent ", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one expense, got %d", len(got))
	}
}
