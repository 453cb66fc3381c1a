package response

import "dukaprint/internal/domain/entities"

// OrderResponse wraps the authoritative order record echoed back to the
// register; it carries the server-issued order number and totals.
type OrderResponse struct {
	Order entities.Order `json:"order"`
}

func FromOrder(o entities.Order) OrderResponse {
	if o.Items == nil {
		o.Items = []entities.OrderItem{}
	}
	return OrderResponse{Order: o}
}

type OrderListResponse struct {
	Orders []entities.Order `json:"orders"`
}

func FromOrders(orders []entities.Order) OrderListResponse {
	if orders == nil {
		orders = []entities.Order{}
	}
	return OrderListResponse{Orders: orders}
}
