package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"
	mock_interfaces "dukaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewReportUseCase(orders, customers, inventory, nil)
	uc.now = fixedClock()

	today := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	orders.EXPECT().List(gomock.Any(), interfaces.OrderFilter{From: monthStart}).Return([]entities.Order{
		{ID: "o1", PaymentStatus: entities.PaymentStatusPaid, FinalAmount: 200, CreatedAt: today,
			Items: []entities.OrderItem{{ItemType: entities.ItemTypeService, ItemName: "Printing", Quantity: 4, TotalPrice: 200}}},
		{ID: "o2", PaymentStatus: entities.PaymentStatusPaid, FinalAmount: 500, CreatedAt: earlier,
			Items: []entities.OrderItem{{ItemType: entities.ItemTypeService, ItemName: "Design", Quantity: 1, TotalPrice: 500}}},
		{ID: "o3", PaymentStatus: entities.PaymentStatusPending, FinalAmount: 90, CreatedAt: today},
	}, nil)
	orders.EXPECT().List(gomock.Any(), interfaces.OrderFilter{Status: entities.OrderStatusPending}).Return([]entities.Order{{ID: "o3"}}, nil)
	customers.EXPECT().List(gomock.Any()).Return([]entities.Customer{
		{ID: "c1", CreatedAt: earlier},
		{ID: "c2", CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)
	inventory.EXPECT().List(gomock.Any(), "", "").Return([]entities.InventoryItem{
		{ID: "i1", Quantity: 1, MinQuantity: 5},
		{ID: "i2", Quantity: 50, MinQuantity: 5},
	}, nil)

	stats, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TodaySales != 200 || stats.TodayOrders != 1 {
		t.Fatalf("unexpected today stats %+v", stats)
	}
	if stats.MonthSales != 700 || stats.MonthOrders != 2 {
		t.Fatalf("unexpected month stats %+v", stats)
	}
	if stats.PendingOrders != 1 || stats.TotalCustomers != 2 || stats.NewCustomers != 1 || stats.LowStockCount != 1 {
		t.Fatalf("unexpected counters %+v", stats)
	}
	if len(stats.TopServices) != 2 || stats.TopServices[0].Name != "Design" {
		t.Fatalf("expected Design on top, got %+v", stats.TopServices)
	}
	if len(stats.RecentOrders) != 3 || stats.RecentOrders[0].ID != "o1" && stats.RecentOrders[0].ID != "o3" {
		t.Fatalf("unexpected recent orders %+v", stats.RecentOrders)
	}
}

func TestReportUseCase_Sales(t *testing.T) {
	t.Run("missing range", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil)
		_, err := uc.Sales(context.Background(), time.Time{}, time.Now())
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("paid orders grouped by method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReportUseCase(orders, nil, nil, nil)

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		orders.EXPECT().List(gomock.Any(), interfaces.OrderFilter{From: from, To: to}).Return([]entities.Order{
			{PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: entities.PaymentMethodCash, FinalAmount: 100},
			{PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: entities.PaymentMethodMpesa, FinalAmount: 400},
			{PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: entities.PaymentMethodCash, FinalAmount: 50},
			{PaymentStatus: entities.PaymentStatusPending, PaymentMethod: entities.PaymentMethodCash, FinalAmount: 999},
		}, nil)

		report, err := uc.Sales(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalSales != 550 || report.TotalOrders != 3 {
			t.Fatalf("unexpected totals %+v", report)
		}
		if len(report.PaymentBreakdown) != 2 {
			t.Fatalf("expected 2 methods, got %+v", report.PaymentBreakdown)
		}
		if report.PaymentBreakdown[0].Method != entities.PaymentMethodMpesa || report.PaymentBreakdown[0].Total != 400 {
			t.Fatalf("expected mpesa ranked first, got %+v", report.PaymentBreakdown)
		}
	})
}

func TestReportUseCase_ProfitLoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	expenses := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewReportUseCase(orders, nil, nil, expenses)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	orders.EXPECT().List(gomock.Any(), interfaces.OrderFilter{From: from, To: to}).Return([]entities.Order{
		{PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: entities.PaymentMethodCash, FinalAmount: 1000},
	}, nil)
	expenses.EXPECT().List(gomock.Any(), "", from, to).Return([]entities.Expense{
		{Amount: 300}, {Amount: 150},
	}, nil)

	pl, err := uc.ProfitLoss(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.TotalSales != 1000 || pl.TotalExpenses != 450 || pl.NetProfit != 550 {
		t.Fatalf("unexpected profit/loss %+v", pl)
	}
}
