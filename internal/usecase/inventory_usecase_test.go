package usecase

import (
	"context"
	"errors"
	"testing"

	"dukaprint/internal/domain/entities"
	mock_interfaces "dukaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_List(t *testing.T) {
	t.Run("low stock filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "", "").Return([]entities.InventoryItem{
			{ID: "a", Name: "Toner", Quantity: 2, MinQuantity: 5},
			{ID: "b", Name: "A4 Ream", Quantity: 40, MinQuantity: 10},
		}, nil)

		got, err := uc.List(context.Background(), "", "", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected only low stock item, got %+v", got)
		}
	})

	t.Run("passes category and search through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "stationery", "pen").Return([]entities.InventoryItem{}, nil)

		if _, err := uc.List(context.Background(), " stationery ", " pen ", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInventoryUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.Create(context.Background(), CreateItemInput{Category: "stationery"})
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "SKU-1").Return(entities.InventoryItem{ID: "taken"}, nil)

		_, err := uc.Create(context.Background(), CreateItemInput{
			Name: "Stapler", Category: "equipment", SKU: "SKU-1", SellingPrice: 300,
		})
		if !errors.Is(err, ErrSKUExists) {
			t.Fatalf("expected ErrSKUExists, got %v", err)
		}
	})

	t.Run("defaults min quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
				if item.MinQuantity != 10 {
					t.Fatalf("expected default min quantity 10, got %d", item.MinQuantity)
				}
				if item.ID == "" {
					t.Fatal("expected generated id")
				}
				return item, nil
			})

		_, err := uc.Create(context.Background(), CreateItemInput{
			Name: "Glue Stick", Category: "stationery", Quantity: 12, UnitPrice: 20, SellingPrice: 35,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInventoryUseCase_AdjustStock(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.InventoryItem{ID: "item-1", Quantity: 4}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
				if item.Quantity != 10 {
					t.Fatalf("expected 10, got %d", item.Quantity)
				}
				return item, nil
			})

		if _, err := uc.AdjustStock(context.Background(), "item-1", 6, StockOpAdd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove below zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.InventoryItem{ID: "item-1", Quantity: 4}, nil)

		_, err := uc.AdjustStock(context.Background(), "item-1", 6, StockOpRemove)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("unknown op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.InventoryItem{ID: "item-1"}, nil)

		_, err := uc.AdjustStock(context.Background(), "item-1", 1, "set")
		if !errors.Is(err, ErrInvalidStockOp) {
			t.Fatalf("expected ErrInvalidStockOp, got %v", err)
		}
	})
}

func TestInventoryUseCase_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewInventoryUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.InventoryItem{}, nil)

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
