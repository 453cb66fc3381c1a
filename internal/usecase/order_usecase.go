package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyOrder          = errors.New("order must have at least one item")
	ErrInvalidQuantity     = errors.New("invalid item quantity")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderCompleted      = errors.New("cannot cancel completed order")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrGatewayUnconfigured = errors.New("payment gateway not configured")
)

// CreateOrderItemInput is one line of an incoming order. UnitPrice is the
// price the register captured when the line was added; the server extends
// it into the line total but does not re-price against the catalog.
type CreateOrderItemInput struct {
	ItemType  string
	ItemID    string
	ItemName  string
	Quantity  int
	UnitPrice float64
}

// CreateOrderInput carries everything POST /orders accepts.
type CreateOrderInput struct {
	CustomerID      string
	RegisterID      string
	Items           []CreateOrderItemInput
	Discount        float64
	PaymentMethod   string
	PaymentStatus   string
	Notes           string
	ReferenceNumber string
}

// UpdateOrderInput updates mutable order fields; nil pointers leave the
// field untouched.
type UpdateOrderInput struct {
	Status          *string
	PaymentStatus   *string
	Notes           *string
	ReferenceNumber string
}

// IOrderUseCase exposes the order lifecycle: create from a register
// submission, list/get for the back office, status updates and
// cancellation with stock restoration.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, f interfaces.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (entities.Order, error)
	Cancel(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	orders       interfaces.IOrderRepository
	inventory    interfaces.IInventoryRepository
	customers    interfaces.ICustomerRepository
	transactions interfaces.ITransactionRepository
	gateway      interfaces.IPaymentGateway

	now func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	inventory interfaces.IInventoryRepository,
	customers interfaces.ICustomerRepository,
	transactions interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		inventory:    inventory,
		customers:    customers,
		transactions: transactions,
		gateway:      gateway,
		now:          time.Now,
	}
}

// Create validates the submission, checks and decrements product stock,
// persists the order and records the sale transaction when it arrives
// already paid. Stock is validated for every line before any decrement so
// a rejected order leaves inventory untouched.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}

	now := u.now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		OrderNumber:     "ORD-" + now.Format("20060102150405"),
		CustomerID:      strings.TrimSpace(in.CustomerID),
		RegisterID:      strings.TrimSpace(in.RegisterID),
		Discount:        in.Discount,
		PaymentMethod:   paymentMethodOrDefault(in.PaymentMethod),
		PaymentStatus:   paymentStatusOrDefault(in.PaymentStatus),
		Status:          entities.OrderStatusPending,
		Notes:           in.Notes,
		ReferenceNumber: in.ReferenceNumber,
		CreatedAt:       now,
	}

	var total float64
	stocked := make(map[string]entities.InventoryItem)
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return entities.Order{}, fmt.Errorf("%w for %s", ErrInvalidQuantity, it.ItemName)
		}

		line := entities.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			ItemType:   entities.ItemType(it.ItemType),
			ItemID:     it.ItemID,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: float64(it.Quantity) * it.UnitPrice,
		}
		order.Items = append(order.Items, line)
		total += line.TotalPrice

		if line.ItemType != entities.ItemTypeProduct || line.ItemID == "" {
			continue
		}
		item, ok := stocked[line.ItemID]
		if !ok {
			var err error
			item, err = u.inventory.GetByID(ctx, line.ItemID)
			if err != nil {
				return entities.Order{}, err
			}
			if item.ID == "" {
				// Item deleted since the register's snapshot; nothing to decrement.
				continue
			}
		}
		if item.Quantity < line.Quantity {
			return entities.Order{}, fmt.Errorf("%w for %s", ErrInsufficientStock, item.Name)
		}
		item.Quantity -= line.Quantity
		stocked[line.ItemID] = item
	}

	order.TotalAmount = total
	// Final amount stays unclamped: an over-discount records as negative.
	order.FinalAmount = total - order.Discount

	for _, item := range stocked {
		item.UpdatedAt = now
		if _, err := u.inventory.Update(ctx, item); err != nil {
			return entities.Order{}, err
		}
	}

	if order.CustomerID != "" {
		customer, err := u.customers.GetByID(ctx, order.CustomerID)
		if err != nil {
			return entities.Order{}, err
		}
		if customer.ID != "" {
			visit := now
			customer.LastVisit = &visit
			customer.TotalSpent += order.FinalAmount
			if _, err := u.customers.Update(ctx, customer); err != nil {
				return entities.Order{}, err
			}
			order.Customer = &customer
		}
	}

	if order.PaymentStatus == entities.PaymentStatusPaid {
		ref, err := u.settle(ctx, order)
		if err != nil {
			return entities.Order{}, err
		}
		order.ReferenceNumber = ref
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	created.Customer = order.Customer
	log.Printf("[order][usecase] created order_number=%s items=%d final=%.2f", created.OrderNumber, len(created.Items), created.FinalAmount)
	return created, nil
}

// settle captures a card payment when a gateway is configured and records
// the sale transaction. Returns the reference number to keep on the order.
func (u *OrderUseCase) settle(ctx context.Context, order entities.Order) (string, error) {
	ref := order.ReferenceNumber
	if order.PaymentMethod == entities.PaymentMethodCard && u.gateway != nil {
		providerRef, err := u.gateway.CaptureCardPayment(ctx, order)
		if err != nil {
			log.Printf("[order][usecase] card capture failed order_number=%s err=%v", order.OrderNumber, err)
			return "", err
		}
		ref = providerRef
	}

	_, err := u.transactions.Create(ctx, entities.Transaction{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		Type:            entities.TransactionTypeSale,
		Amount:          order.FinalAmount,
		PaymentMethod:   order.PaymentMethod,
		ReferenceNumber: ref,
		Description:     "Sale " + order.OrderNumber,
		CreatedAt:       u.now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) List(ctx context.Context, f interfaces.OrderFilter) ([]entities.Order, error) {
	return u.orders.List(ctx, f)
}

// Update applies status and payment changes. Completing an order stamps
// completed_at; the first transition to paid records the sale transaction.
func (u *OrderUseCase) Update(ctx context.Context, id string, in UpdateOrderInput) (entities.Order, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	if in.Status != nil {
		order.Status = entities.OrderStatus(*in.Status)
		if order.Status == entities.OrderStatusCompleted {
			done := u.now().UTC()
			order.CompletedAt = &done
		}
	}

	if in.PaymentStatus != nil {
		previous := order.PaymentStatus
		order.PaymentStatus = entities.PaymentStatus(*in.PaymentStatus)
		if in.ReferenceNumber != "" {
			order.ReferenceNumber = in.ReferenceNumber
		}
		if previous != entities.PaymentStatusPaid && order.PaymentStatus == entities.PaymentStatusPaid {
			ref, err := u.settle(ctx, order)
			if err != nil {
				return entities.Order{}, err
			}
			order.ReferenceNumber = ref
		}
	}

	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	return u.orders.Update(ctx, order)
}

// Cancel refuses completed orders and puts product stock back.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) (entities.Order, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status == entities.OrderStatusCompleted {
		return entities.Order{}, ErrOrderCompleted
	}

	for _, line := range order.Items {
		if line.ItemType != entities.ItemTypeProduct || line.ItemID == "" {
			continue
		}
		item, err := u.inventory.GetByID(ctx, line.ItemID)
		if err != nil {
			return entities.Order{}, err
		}
		if item.ID == "" {
			continue
		}
		item.Quantity += line.Quantity
		item.UpdatedAt = u.now().UTC()
		if _, err := u.inventory.Update(ctx, item); err != nil {
			return entities.Order{}, err
		}
	}

	order.Status = entities.OrderStatusCancelled
	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] cancelled order_number=%s", updated.OrderNumber)
	return updated, nil
}

func paymentMethodOrDefault(m string) entities.PaymentMethod {
	switch entities.PaymentMethod(m) {
	case entities.PaymentMethodMpesa:
		return entities.PaymentMethodMpesa
	case entities.PaymentMethodCard:
		return entities.PaymentMethodCard
	default:
		return entities.PaymentMethodCash
	}
}

func paymentStatusOrDefault(s string) entities.PaymentStatus {
	switch entities.PaymentStatus(s) {
	case entities.PaymentStatusPaid:
		return entities.PaymentStatusPaid
	case entities.PaymentStatusPartial:
		return entities.PaymentStatusPartial
	default:
		return entities.PaymentStatusPending
	}
}
