package interfaces

import (
	"context"

	"dukaprint/internal/domain/entities"
)

// IPaymentGateway abstracts the external card processor (Mercado Pago).
//
// Cash and M-Pesa settlements are recorded locally only; the gateway is
// invoked when a card order is marked paid, and the provider reference is
// kept on the sale transaction for reconciliation.
type IPaymentGateway interface {
	CaptureCardPayment(ctx context.Context, order entities.Order) (providerRef string, err error)
}
