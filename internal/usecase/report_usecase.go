package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("date_from and date_to are required")

// DashboardStats is the landing-page summary for the back office.
type DashboardStats struct {
	TodaySales     float64          `json:"today_sales"`
	TodayOrders    int              `json:"today_orders"`
	MonthSales     float64          `json:"month_sales"`
	MonthOrders    int              `json:"month_orders"`
	TotalCustomers int              `json:"total_customers"`
	NewCustomers   int              `json:"new_customers"`
	PendingOrders  int              `json:"pending_orders"`
	LowStockCount  int              `json:"low_stock_count"`
	RecentOrders   []entities.Order `json:"recent_orders"`
	TopServices    []TopService     `json:"top_services"`
}

// TopService is a month-to-date revenue ranking entry.
type TopService struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// PaymentBreakdown groups paid sales by settlement method.
type PaymentBreakdown struct {
	Method entities.PaymentMethod `json:"method"`
	Count  int                    `json:"count"`
	Total  float64                `json:"total"`
}

// SalesReport summarizes paid orders over a date range.
type SalesReport struct {
	From             time.Time          `json:"date_from"`
	To               time.Time          `json:"date_to"`
	TotalSales       float64            `json:"total_sales"`
	TotalOrders      int                `json:"total_orders"`
	PaymentBreakdown []PaymentBreakdown `json:"payment_breakdown"`
}

// ProfitLoss nets paid sales against recorded expenses.
type ProfitLoss struct {
	From          time.Time `json:"date_from"`
	To            time.Time `json:"date_to"`
	TotalSales    float64   `json:"total_sales"`
	TotalExpenses float64   `json:"total_expenses"`
	NetProfit     float64   `json:"net_profit"`
}

type IReportUseCase interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	Sales(ctx context.Context, from, to time.Time) (SalesReport, error)
	ProfitLoss(ctx context.Context, from, to time.Time) (ProfitLoss, error)
}

type ReportUseCase struct {
	orders    interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	inventory interfaces.IInventoryRepository
	expenses  interfaces.IExpenseRepository

	now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IOrderRepository,
	customers interfaces.ICustomerRepository,
	inventory interfaces.IInventoryRepository,
	expenses interfaces.IExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{
		orders:    orders,
		customers: customers,
		inventory: inventory,
		expenses:  expenses,
		now:       time.Now,
	}
}

const (
	recentOrderCount = 5
	topServiceCount  = 5
)

func (u *ReportUseCase) Dashboard(ctx context.Context) (DashboardStats, error) {
	now := u.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	monthOrders, err := u.orders.List(ctx, interfaces.OrderFilter{From: monthStart})
	if err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	for _, o := range monthOrders {
		if o.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		stats.MonthSales += o.FinalAmount
		stats.MonthOrders++
		if !o.CreatedAt.Before(dayStart) {
			stats.TodaySales += o.FinalAmount
			stats.TodayOrders++
		}
	}

	pending, err := u.orders.List(ctx, interfaces.OrderFilter{Status: entities.OrderStatusPending})
	if err != nil {
		return DashboardStats{}, err
	}
	stats.PendingOrders = len(pending)

	customers, err := u.customers.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalCustomers = len(customers)
	for _, c := range customers {
		if !c.CreatedAt.Before(monthStart) {
			stats.NewCustomers++
		}
	}

	items, err := u.inventory.List(ctx, "", "")
	if err != nil {
		return DashboardStats{}, err
	}
	for _, it := range items {
		if it.IsLowStock() {
			stats.LowStockCount++
		}
	}

	stats.RecentOrders = recentOrders(monthOrders, recentOrderCount)
	stats.TopServices = topServices(monthOrders, topServiceCount)
	return stats, nil
}

func (u *ReportUseCase) Sales(ctx context.Context, from, to time.Time) (SalesReport, error) {
	if from.IsZero() || to.IsZero() {
		return SalesReport{}, ErrInvalidDateRange
	}

	orders, err := u.orders.List(ctx, interfaces.OrderFilter{From: from, To: to})
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{From: from, To: to}
	byMethod := map[entities.PaymentMethod]*PaymentBreakdown{}
	for _, o := range orders {
		if o.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		report.TotalSales += o.FinalAmount
		report.TotalOrders++

		b, ok := byMethod[o.PaymentMethod]
		if !ok {
			b = &PaymentBreakdown{Method: o.PaymentMethod}
			byMethod[o.PaymentMethod] = b
		}
		b.Count++
		b.Total += o.FinalAmount
	}

	report.PaymentBreakdown = make([]PaymentBreakdown, 0, len(byMethod))
	for _, b := range byMethod {
		report.PaymentBreakdown = append(report.PaymentBreakdown, *b)
	}
	sort.Slice(report.PaymentBreakdown, func(i, j int) bool {
		return report.PaymentBreakdown[i].Total > report.PaymentBreakdown[j].Total
	})
	return report, nil
}

func (u *ReportUseCase) ProfitLoss(ctx context.Context, from, to time.Time) (ProfitLoss, error) {
	sales, err := u.Sales(ctx, from, to)
	if err != nil {
		return ProfitLoss{}, err
	}

	expenses, err := u.expenses.List(ctx, "", from, to)
	if err != nil {
		return ProfitLoss{}, err
	}

	pl := ProfitLoss{From: from, To: to, TotalSales: sales.TotalSales}
	for _, e := range expenses {
		pl.TotalExpenses += e.Amount
	}
	pl.NetProfit = pl.TotalSales - pl.TotalExpenses
	return pl, nil
}

func recentOrders(orders []entities.Order, n int) []entities.Order {
	sorted := make([]entities.Order, len(orders))
	copy(sorted, orders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func topServices(orders []entities.Order, n int) []TopService {
	byName := map[string]*TopService{}
	for _, o := range orders {
		for _, line := range o.Items {
			if line.ItemType != entities.ItemTypeService {
				continue
			}
			t, ok := byName[line.ItemName]
			if !ok {
				t = &TopService{Name: line.ItemName}
				byName[line.ItemName] = t
			}
			t.Quantity += line.Quantity
			t.Revenue += line.TotalPrice
		}
	}

	out := make([]TopService, 0, len(byName))
	for _, t := range byName {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
