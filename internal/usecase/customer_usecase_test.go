package usecase

import (
	"context"
	"errors"
	"testing"

	"dukaprint/internal/domain/entities"
	mock_interfaces "dukaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Search(t *testing.T) {
	t.Run("short query returns empty without repo call", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		got, err := uc.Search(context.Background(), " a ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})

	t.Run("delegates with limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Search(gomock.Any(), "am", 10).Return([]entities.Customer{{ID: "c1", Name: "Amina"}}, nil)

		got, err := uc.Search(context.Background(), "am")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "c1" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Amina"})
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByPhone(gomock.Any(), "0712000000").Return(entities.Customer{ID: "taken"}, nil)

		_, err := uc.Create(context.Background(), CreateCustomerInput{Name: "Amina", Phone: "0712000000"})
		if !errors.Is(err, ErrPhoneExists) {
			t.Fatalf("expected ErrPhoneExists, got %v", err)
		}
	})

	t.Run("success generates id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByPhone(gomock.Any(), "0712000000").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatal("expected generated id")
				}
				if c.Name != "Amina" {
					t.Fatalf("expected trimmed name, got %q", c.Name)
				}
				return c, nil
			})

		if _, err := uc.Create(context.Background(), CreateCustomerInput{Name: " Amina ", Phone: "0712000000"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_AdjustBalance(t *testing.T) {
	t.Run("deduct beyond balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1", AccountBalance: 100}, nil)

		_, err := uc.AdjustBalance(context.Background(), "c1", 150, BalanceOpDeduct)
		if !errors.Is(err, ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1", AccountBalance: 100}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.AccountBalance != 250 {
					t.Fatalf("expected balance 250, got %v", c.AccountBalance)
				}
				return c, nil
			})

		if _, err := uc.AdjustBalance(context.Background(), "c1", 150, BalanceOpAdd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("refuses when orders exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCustomerUseCase(repo, orders)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		orders.EXPECT().CountByCustomerID(gomock.Any(), "c1").Return(3, nil)

		if err := uc.Delete(context.Background(), "c1"); !errors.Is(err, ErrCustomerHasOrders) {
			t.Fatalf("expected ErrCustomerHasOrders, got %v", err)
		}
	})

	t.Run("deletes when clean", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCustomerUseCase(repo, orders)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		orders.EXPECT().CountByCustomerID(gomock.Any(), "c1").Return(0, nil)
		repo.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

		if err := uc.Delete(context.Background(), "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
