package routes

import (
	"dukaprint/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services"
	PathInventory = "/inventory"
	PathCustomers = "/customers"
	PathOrders    = "/orders"
	PathExpenses  = "/expenses"
	PathReports   = "/reports"
)

type shopHandlers struct {
	services  *handlers.ServiceHandler
	inventory *handlers.InventoryHandler
	customers *handlers.CustomerHandler
	orders    *handlers.OrderHandler
	expenses  *handlers.ExpenseHandler
	reports   *handlers.ReportHandler
}

func addShopRoutes(rg *gin.RouterGroup, h shopHandlers) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.services.ListServices)
		services.GET("/categories", h.services.ListServiceCategories)
		services.GET("/:id", h.services.GetService)
		services.POST("", h.services.CreateService)
		services.PUT("/:id", h.services.UpdateService)
		services.DELETE("/:id", h.services.DeactivateService)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", h.inventory.ListItems)
		inventory.GET("/categories", h.inventory.ListItemCategories)
		inventory.GET("/:id", h.inventory.GetItem)
		inventory.POST("", h.inventory.CreateItem)
		inventory.PUT("/:id", h.inventory.UpdateItem)
		inventory.POST("/:id/stock", h.inventory.AdjustStock)
		inventory.DELETE("/:id", h.inventory.DeleteItem)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.customers.ListCustomers)
		customers.GET("/search", h.customers.SearchCustomers)
		customers.GET("/:id", h.customers.GetCustomer)
		customers.POST("", h.customers.CreateCustomer)
		customers.PUT("/:id", h.customers.UpdateCustomer)
		customers.POST("/:id/balance", h.customers.AdjustBalance)
		customers.DELETE("/:id", h.customers.DeleteCustomer)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.orders.ListOrders)
		orders.GET("/:id", h.orders.GetOrder)
		orders.POST("", h.orders.CreateOrder)
		orders.PUT("/:id", h.orders.UpdateOrder)
		orders.POST("/:id/cancel", h.orders.CancelOrder)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", h.expenses.ListExpenses)
		expenses.GET("/categories", h.expenses.ListExpenseCategories)
		expenses.GET("/:id", h.expenses.GetExpense)
		expenses.POST("", h.expenses.CreateExpense)
		expenses.PUT("/:id", h.expenses.UpdateExpense)
		expenses.DELETE("/:id", h.expenses.DeleteExpense)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/dashboard", h.reports.Dashboard)
		reports.GET("/sales", h.reports.SalesReport)
		reports.GET("/profit-loss", h.reports.ProfitLossReport)
	}
}
