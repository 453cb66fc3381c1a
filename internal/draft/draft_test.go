package draft

import (
	"errors"
	"reflect"
	"testing"

	"dukaprint/internal/domain/entities"
)

func svc(id, name string, price float64) entities.Service {
	return entities.Service{ID: id, Name: name, BasePrice: price, Unit: "per_page", IsActive: true}
}

func product(id, name string, price float64, stock int) entities.InventoryItem {
	return entities.InventoryItem{ID: id, Name: name, SellingPrice: price, Quantity: stock, MinQuantity: 2}
}

func TestDraft_AddService(t *testing.T) {
	printing := svc("svc-1", "A4 Printing", 10)

	t.Run("appends new line with frozen base price", func(t *testing.T) {
		d := New().AddService(printing, 2)
		if len(d.Items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(d.Items))
		}
		l := d.Items[0]
		if l.ItemType != entities.ItemTypeService || l.ItemID != "svc-1" || l.Quantity != 2 || l.UnitPrice != 10 {
			t.Fatalf("unexpected line: %+v", l)
		}
	})

	t.Run("merges duplicate into single line", func(t *testing.T) {
		d := New().AddService(printing, 2).AddService(printing, 3)
		if len(d.Items) != 1 {
			t.Fatalf("expected 1 line after merge, got %d", len(d.Items))
		}
		if d.Items[0].Quantity != 5 {
			t.Fatalf("expected merged quantity 5, got %d", d.Items[0].Quantity)
		}
	})

	t.Run("no stock bound on services", func(t *testing.T) {
		d := New().AddService(printing, 1000).AddService(printing, 1000)
		if d.Items[0].Quantity != 2000 {
			t.Fatalf("expected quantity 2000, got %d", d.Items[0].Quantity)
		}
	})

	t.Run("quantity below one is treated as one", func(t *testing.T) {
		d := New().AddService(printing, 0)
		if d.Items[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", d.Items[0].Quantity)
		}
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		base := New().AddService(printing, 1)
		_ = base.AddService(printing, 9)
		if base.Items[0].Quantity != 1 {
			t.Fatalf("receiver mutated: %+v", base.Items[0])
		}
	})
}

func TestDraft_AddProduct(t *testing.T) {
	paper := product("inv-1", "A4 Ream", 100, 5)

	t.Run("appends with selling price", func(t *testing.T) {
		d, err := New().AddProduct(paper, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := d.Items[0]
		if l.ItemType != entities.ItemTypeProduct || l.UnitPrice != 100 || l.Quantity != 3 {
			t.Fatalf("unexpected line: %+v", l)
		}
	})

	t.Run("cumulative adds within stock merge into one line", func(t *testing.T) {
		d, err := New().AddProduct(paper, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d, err = d.AddProduct(paper, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Items) != 1 || d.Items[0].Quantity != 5 {
			t.Fatalf("expected single line with quantity 5, got %+v", d.Items)
		}
	})

	t.Run("exceeding cached stock fails and leaves ledger unchanged", func(t *testing.T) {
		d, err := New().AddProduct(paper, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := d.Items[0]

		got, err := d.AddProduct(paper, 3) // cumulative 6 > 5
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if len(got.Items) != 1 || !reflect.DeepEqual(got.Items[0], before) {
			t.Fatalf("ledger changed on failure: %+v", got.Items)
		}
		if got.Subtotal() != 300 {
			t.Fatalf("expected subtotal 300, got %v", got.Subtotal())
		}
	})

	t.Run("first add beyond stock fails", func(t *testing.T) {
		_, err := New().AddProduct(paper, 6)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("service and product with same id stay separate lines", func(t *testing.T) {
		d := New().AddService(svc("x-1", "Lamination", 20), 1)
		d, err := d.AddProduct(product("x-1", "Pouch", 5, 10), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(d.Items))
		}
	})
}

func TestDraft_UpdateQuantity(t *testing.T) {
	paper := product("inv-1", "A4 Ream", 100, 5)

	t.Run("zero is a no-op", func(t *testing.T) {
		d, _ := New().AddProduct(paper, 3)
		got, err := d.UpdateQuantity(0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Items[0].Quantity != 3 {
			t.Fatalf("quantity changed on no-op: %d", got.Items[0].Quantity)
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		d, _ := New().AddProduct(paper, 3)
		got, err := d.UpdateQuantity(5, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Items, d.Items) {
			t.Fatalf("ledger changed: %+v", got.Items)
		}
	})

	t.Run("raising product quantity past snapshot stock fails unchanged", func(t *testing.T) {
		d, _ := New().AddProduct(paper, 3)
		got, err := d.UpdateQuantity(0, 6)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if got.Items[0].Quantity != 3 {
			t.Fatalf("ledger changed on failure: %d", got.Items[0].Quantity)
		}
	})

	t.Run("service quantity is unbounded", func(t *testing.T) {
		d := New().AddService(svc("svc-1", "Printing", 10), 1)
		got, err := d.UpdateQuantity(0, 500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Items[0].Quantity != 500 {
			t.Fatalf("expected quantity 500, got %d", got.Items[0].Quantity)
		}
	})

	t.Run("valid update within stock", func(t *testing.T) {
		d, _ := New().AddProduct(paper, 3)
		got, err := d.UpdateQuantity(0, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", got.Items[0].Quantity)
		}
	})
}

func TestDraft_RemoveItem(t *testing.T) {
	printing := svc("svc-1", "Printing", 10)
	paper := product("inv-1", "A4 Ream", 100, 5)

	t.Run("removes by position", func(t *testing.T) {
		d := New().AddService(printing, 1)
		d, _ = d.AddProduct(paper, 1)
		d = d.RemoveItem(0)
		if len(d.Items) != 1 || d.Items[0].ItemID != "inv-1" {
			t.Fatalf("unexpected ledger: %+v", d.Items)
		}
	})

	t.Run("out of range ignored", func(t *testing.T) {
		d := New().AddService(printing, 1)
		if got := d.RemoveItem(7); len(got.Items) != 1 {
			t.Fatalf("unexpected ledger: %+v", got.Items)
		}
	})

	t.Run("remove then re-add starts a fresh line", func(t *testing.T) {
		d := New().AddService(printing, 4)
		d = d.RemoveItem(0)
		d = d.AddService(printing, 1)
		if len(d.Items) != 1 || d.Items[0].Quantity != 1 {
			t.Fatalf("expected fresh line with quantity 1, got %+v", d.Items)
		}
	})
}

func TestDraft_Pricing(t *testing.T) {
	t.Run("mixed services and products with discount", func(t *testing.T) {
		d := New().AddService(svc("svc-1", "Design", 50), 2)
		d, err := d.AddProduct(product("inv-1", "Pen", 30, 10), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d = d.WithDiscount(10)
		if d.Subtotal() != 130 {
			t.Fatalf("expected subtotal 130, got %v", d.Subtotal())
		}
		if d.Total() != 120 {
			t.Fatalf("expected total 120, got %v", d.Total())
		}
	})

	t.Run("subtotal invariant under add order", func(t *testing.T) {
		design := svc("svc-1", "Design", 50)
		pen := product("inv-1", "Pen", 30, 10)

		a := New().AddService(design, 2)
		a, _ = a.AddProduct(pen, 3)

		b, _ := New().AddProduct(pen, 1)
		b = b.AddService(design, 1)
		b, _ = b.AddProduct(pen, 2)
		b = b.AddService(design, 1)

		if a.Subtotal() != b.Subtotal() {
			t.Fatalf("subtotals differ: %v vs %v", a.Subtotal(), b.Subtotal())
		}
	})

	t.Run("discount is not capped at subtotal", func(t *testing.T) {
		d := New().AddService(svc("svc-1", "Printing", 10), 1).WithDiscount(25)
		if d.Total() != -15 {
			t.Fatalf("expected total -15, got %v", d.Total())
		}
	})

	t.Run("negative discount floors at zero", func(t *testing.T) {
		d := New().WithDiscount(-5)
		if d.Discount != 0 {
			t.Fatalf("expected discount 0, got %v", d.Discount)
		}
	})
}

func TestDraft_Customer(t *testing.T) {
	alice := entities.Customer{ID: "cus-1", Name: "Alice", Phone: "0700000001"}
	bob := entities.Customer{ID: "cus-2", Name: "Bob", Phone: "0700000002"}

	t.Run("attach replaces previous customer", func(t *testing.T) {
		d := New().WithCustomer(alice).WithCustomer(bob)
		if d.Customer == nil || d.Customer.ID != "cus-2" {
			t.Fatalf("unexpected customer: %+v", d.Customer)
		}
	})

	t.Run("detach clears the slot", func(t *testing.T) {
		d := New().WithCustomer(alice).WithoutCustomer()
		if d.Customer != nil {
			t.Fatalf("expected no customer, got %+v", d.Customer)
		}
	})
}
