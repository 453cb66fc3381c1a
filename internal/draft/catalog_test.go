package draft

import (
	"context"
	"errors"
	"testing"

	"dukaprint/internal/domain/entities"
)

type stubSource struct {
	services []entities.Service
	products []entities.InventoryItem
	err      error

	serviceCalls   int
	inventoryCalls int
}

func (s *stubSource) FetchServices(ctx context.Context) ([]entities.Service, error) {
	s.serviceCalls++
	return s.services, s.err
}

func (s *stubSource) FetchInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	s.inventoryCalls++
	return s.products, s.err
}

func TestCache_Refresh(t *testing.T) {
	t.Run("loads both halves wholesale", func(t *testing.T) {
		src := &stubSource{
			services: []entities.Service{svc("svc-1", "Printing", 10)},
			products: []entities.InventoryItem{product("inv-1", "Ream", 100, 5)},
		}
		c := NewCache(src)
		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Services()) != 1 || len(c.Products()) != 1 {
			t.Fatalf("unexpected snapshot: %d services, %d products", len(c.Services()), len(c.Products()))
		}
	})

	t.Run("starts empty", func(t *testing.T) {
		c := NewCache(&stubSource{})
		if len(c.Services()) != 0 || len(c.Products()) != 0 {
			t.Fatalf("expected empty snapshot")
		}
	})

	t.Run("failed refresh keeps previous snapshot", func(t *testing.T) {
		src := &stubSource{
			services: []entities.Service{svc("svc-1", "Printing", 10)},
		}
		c := NewCache(src)
		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		src.err = errors.New("backend unreachable")
		if err := c.Refresh(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if len(c.Services()) != 1 {
			t.Fatalf("previous snapshot lost")
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		src := &stubSource{
			services: []entities.Service{svc("svc-1", "Printing", 10)},
			products: []entities.InventoryItem{product("inv-1", "Ream", 100, 5)},
		}
		c := NewCache(src)
		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.ServiceByID("svc-1"); !ok {
			t.Fatalf("service not found")
		}
		if _, ok := c.ProductByID("inv-9"); ok {
			t.Fatalf("unexpected product hit")
		}
	})
}

type countingDirectory struct {
	calls  int
	result []entities.Customer
}

func (d *countingDirectory) SearchCustomers(ctx context.Context, query string) ([]entities.Customer, error) {
	d.calls++
	return d.result, nil
}

func TestResolver_Search(t *testing.T) {
	t.Run("short query short-circuits without a call", func(t *testing.T) {
		dir := &countingDirectory{}
		r := NewResolver(dir)
		for _, q := range []string{"", "a", " b ", "  "} {
			got, err := r.Search(context.Background(), q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty result for %q", q)
			}
		}
		if dir.calls != 0 {
			t.Fatalf("expected no directory calls, got %d", dir.calls)
		}
	})

	t.Run("two characters reach the directory", func(t *testing.T) {
		dir := &countingDirectory{result: []entities.Customer{{ID: "cus-1", Name: "Alice"}}}
		r := NewResolver(dir)
		got, err := r.Search(context.Background(), "al")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.calls != 1 || len(got) != 1 {
			t.Fatalf("expected one call and one hit, got %d calls, %d hits", dir.calls, len(got))
		}
	})
}
