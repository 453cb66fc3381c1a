package draft

import (
	"context"

	"dukaprint/internal/domain/entities"
)

// Submission is the wire payload for order creation.
type Submission struct {
	CustomerID      string                 `json:"customer_id,omitempty"`
	RegisterID      string                 `json:"register_id,omitempty"`
	Items           []LineItem             `json:"items"`
	Discount        float64                `json:"discount"`
	PaymentMethod   entities.PaymentMethod `json:"payment_method"`
	PaymentStatus   entities.PaymentStatus `json:"payment_status"`
	Notes           string                 `json:"notes,omitempty"`
	ReferenceNumber string                 `json:"reference_number,omitempty"`
}

// OrderPlacer hands a finished submission to the order-creation endpoint.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, sub Submission) (entities.Order, error)
}

// Gateway turns a composed draft into a created order. The backend's
// response is authoritative: its totals, order number and timestamps are
// what the receipt shows, not the register's own arithmetic.
type Gateway struct {
	placer     OrderPlacer
	registerID string
}

func NewGateway(placer OrderPlacer, registerID string) *Gateway {
	return &Gateway{placer: placer, registerID: registerID}
}

// Submit validates and sends the draft. An empty ledger fails with
// ErrEmptyDraft before any network call. On backend failure the error
// carries the server's message verbatim and the caller's draft is
// untouched, so the user can correct items and retry.
func (g *Gateway) Submit(ctx context.Context, d Draft) (entities.Order, error) {
	if len(d.Items) == 0 {
		return entities.Order{}, ErrEmptyDraft
	}

	sub := Submission{
		RegisterID:      g.registerID,
		Items:           d.Items,
		Discount:        d.Discount,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   d.PaymentStatus,
		Notes:           d.Notes,
		ReferenceNumber: d.ReferenceNumber,
	}
	if d.Customer != nil {
		sub.CustomerID = d.Customer.ID
	}
	return g.placer.CreateOrder(ctx, sub)
}
