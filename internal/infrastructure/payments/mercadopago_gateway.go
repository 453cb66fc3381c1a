package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway captures card payments for paid orders. In mock mode
// (PAYMENT_GATEWAY_MOCK) it approves everything locally, which keeps the
// shop usable without provider credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CaptureCardPayment charges the order's final amount and returns the
// provider payment id, which the order keeps as its reference number.
func (g *MercadoPagoGateway) CaptureCardPayment(ctx context.Context, order entities.Order) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock capture success order_number=%s amount=%.2f provider_payment_id=%s", order.OrderNumber, order.FinalAmount, id)
		return id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] capture start order_number=%s amount=%.2f", order.OrderNumber, order.FinalAmount)

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: order.FinalAmount,
		Description:       "Order " + order.OrderNumber,
		ExternalReference: order.ID,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_number=%s err=%v", order.OrderNumber, err)
		return "", err
	}
	if resp.Status != "approved" {
		log.Printf("[payment][gateway] capture not approved order_number=%s provider_status=%s", order.OrderNumber, resp.Status)
		return "", fmt.Errorf("payment not approved: %s", resp.Status)
	}

	log.Printf("[payment][gateway] capture success order_number=%s provider_payment_id=%d", order.OrderNumber, resp.ID)
	return strconv.Itoa(resp.ID), nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
