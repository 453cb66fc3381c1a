package draft

import (
	"context"
	"errors"
	"testing"

	"dukaprint/internal/domain/entities"
)

type capturingPlacer struct {
	calls int
	last  Submission
	order entities.Order
	err   error
}

func (p *capturingPlacer) CreateOrder(ctx context.Context, sub Submission) (entities.Order, error) {
	p.calls++
	p.last = sub
	return p.order, p.err
}

func TestGateway_Submit(t *testing.T) {
	t.Run("empty draft fails before any call", func(t *testing.T) {
		placer := &capturingPlacer{}
		g := NewGateway(placer, "reg-1")

		_, err := g.Submit(context.Background(), New())
		if !errors.Is(err, ErrEmptyDraft) {
			t.Fatalf("expected ErrEmptyDraft, got %v", err)
		}
		if placer.calls != 0 {
			t.Fatalf("expected no backend call, got %d", placer.calls)
		}
	})

	t.Run("maps draft fields onto the payload", func(t *testing.T) {
		placer := &capturingPlacer{order: entities.Order{ID: "ord-1", OrderNumber: "ORD-20250101120000"}}
		g := NewGateway(placer, "reg-1")

		d := New().AddService(svc("svc-1", "Printing", 10), 2)
		d = d.WithCustomer(entities.Customer{ID: "cus-1", Name: "Alice"})
		d = d.WithDiscount(5)
		d = d.WithPayment(entities.PaymentMethodMpesa, entities.PaymentStatusPaid)
		d = d.WithNotes("urgent").WithReference("QX12AB34")

		got, err := g.Submit(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderNumber != "ORD-20250101120000" {
			t.Fatalf("server order not returned: %+v", got)
		}

		sub := placer.last
		if sub.CustomerID != "cus-1" || sub.RegisterID != "reg-1" {
			t.Fatalf("unexpected ids: %+v", sub)
		}
		if len(sub.Items) != 1 || sub.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", sub.Items)
		}
		if sub.Discount != 5 || sub.PaymentMethod != entities.PaymentMethodMpesa || sub.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected payment fields: %+v", sub)
		}
		if sub.Notes != "urgent" || sub.ReferenceNumber != "QX12AB34" {
			t.Fatalf("unexpected notes/reference: %+v", sub)
		}
	})

	t.Run("anonymous draft sends no customer id", func(t *testing.T) {
		placer := &capturingPlacer{}
		g := NewGateway(placer, "")

		d := New().AddService(svc("svc-1", "Printing", 10), 1)
		if _, err := g.Submit(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if placer.last.CustomerID != "" {
			t.Fatalf("expected empty customer id, got %q", placer.last.CustomerID)
		}
	})

	t.Run("backend error surfaces verbatim and draft stays usable", func(t *testing.T) {
		placer := &capturingPlacer{err: errors.New("Insufficient stock for A4 Ream")}
		g := NewGateway(placer, "reg-1")

		d := New().AddService(svc("svc-1", "Printing", 10), 1)
		_, err := g.Submit(context.Background(), d)
		if err == nil || err.Error() != "Insufficient stock for A4 Ream" {
			t.Fatalf("expected verbatim backend message, got %v", err)
		}
		// The draft is a value the caller still holds; retry must work.
		if _, err := g.Submit(context.Background(), d); err == nil {
			t.Fatalf("expected error on retry with same stub")
		}
		if placer.calls != 2 {
			t.Fatalf("expected 2 calls, got %d", placer.calls)
		}
	})
}
