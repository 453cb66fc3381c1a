package draft

import (
	"dukaprint/internal/domain/entities"
)

// LineItem is one ledger entry in an in-progress order. UnitPrice is frozen
// at add time and never re-fetched. For product lines, snapshotStock keeps
// the on-hand quantity from the catalog snapshot the item was added from,
// so later quantity edits validate against the same figure.
type LineItem struct {
	ItemType  entities.ItemType `json:"item_type"`
	ItemID    string            `json:"item_id"`
	ItemName  string            `json:"item_name"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unit_price"`

	snapshotStock int
}

// TotalPrice is the line extension, quantity times frozen unit price.
func (l LineItem) TotalPrice() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Draft is an unsaved order being composed at the register. It is a value:
// every mutation returns a new Draft and leaves the receiver untouched, so
// a failed operation cannot corrupt the ledger and callers decide which
// version to keep.
//
// At most one line exists per (item type, item id) pair; re-adding merges
// quantities. Lines keep insertion order, which matters for display and
// receipt printing only.
type Draft struct {
	Customer        *entities.Customer
	Items           []LineItem
	Discount        float64
	PaymentMethod   entities.PaymentMethod
	PaymentStatus   entities.PaymentStatus
	Notes           string
	ReferenceNumber string
}

// New returns an empty draft with the register defaults: cash, paid.
func New() Draft {
	return Draft{
		PaymentMethod: entities.PaymentMethodCash,
		PaymentStatus: entities.PaymentStatusPaid,
	}
}

// AddService appends a service line, or merges into the existing line for
// the same service. Services carry no stock bound, so the merged quantity
// is unchecked. Quantities below one are treated as one.
func (d Draft) AddService(svc entities.Service, qty int) Draft {
	if qty < 1 {
		qty = 1
	}
	out := d.clone()
	if i := out.indexOf(entities.ItemTypeService, svc.ID); i >= 0 {
		out.Items[i].Quantity += qty
		return out
	}
	out.Items = append(out.Items, LineItem{
		ItemType:  entities.ItemTypeService,
		ItemID:    svc.ID,
		ItemName:  svc.Name,
		Quantity:  qty,
		UnitPrice: svc.BasePrice,
	})
	return out
}

// AddProduct appends or merges a product line after checking that the
// cumulative quantity fits within the snapshot stock of item. On
// ErrInsufficientStock the returned draft equals the receiver.
//
// The check runs against the caller's snapshot, not live inventory;
// concurrent depletion by another register only surfaces when the backend
// rejects the final submission.
func (d Draft) AddProduct(item entities.InventoryItem, qty int) (Draft, error) {
	if qty < 1 {
		qty = 1
	}
	existing := 0
	if i := d.indexOf(entities.ItemTypeProduct, item.ID); i >= 0 {
		existing = d.Items[i].Quantity
	}
	if existing+qty > item.Quantity {
		return d, ErrInsufficientStock
	}

	out := d.clone()
	if i := out.indexOf(entities.ItemTypeProduct, item.ID); i >= 0 {
		out.Items[i].Quantity += qty
		out.Items[i].snapshotStock = item.Quantity
		return out, nil
	}
	out.Items = append(out.Items, LineItem{
		ItemType:      entities.ItemTypeProduct,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Quantity:      qty,
		UnitPrice:     item.SellingPrice,
		snapshotStock: item.Quantity,
	})
	return out, nil
}

// UpdateQuantity sets the quantity of the line at index. Quantities below
// one and out-of-range indexes are ignored and the draft returns unchanged.
// Product lines re-validate against the stock snapshot captured at add
// time and fail with ErrInsufficientStock without modifying the ledger.
func (d Draft) UpdateQuantity(index, qty int) (Draft, error) {
	if qty < 1 || index < 0 || index >= len(d.Items) {
		return d, nil
	}
	line := d.Items[index]
	if line.ItemType == entities.ItemTypeProduct && qty > line.snapshotStock {
		return d, ErrInsufficientStock
	}
	out := d.clone()
	out.Items[index].Quantity = qty
	return out, nil
}

// RemoveItem deletes the line at index. Out-of-range indexes are ignored.
// A later re-add of the same item starts a fresh line; nothing merges with
// the removed entry.
func (d Draft) RemoveItem(index int) Draft {
	if index < 0 || index >= len(d.Items) {
		return d
	}
	out := d.clone()
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	return out
}

// WithCustomer attaches a customer to the draft, replacing any previous
// attachment. The draft holds a reference only and never mutates the
// customer record.
func (d Draft) WithCustomer(c entities.Customer) Draft {
	out := d.clone()
	out.Customer = &c
	return out
}

// WithoutCustomer clears the customer slot, reverting to a walk-in sale.
func (d Draft) WithoutCustomer() Draft {
	out := d.clone()
	out.Customer = nil
	return out
}

// WithDiscount sets the flat discount amount. Negative input is floored at
// zero; the discount is deliberately not capped at the subtotal, so the
// total can go negative (see Total).
func (d Draft) WithDiscount(amount float64) Draft {
	if amount < 0 {
		amount = 0
	}
	out := d.clone()
	out.Discount = amount
	return out
}

// WithPayment sets method and status used when the order is submitted.
func (d Draft) WithPayment(method entities.PaymentMethod, status entities.PaymentStatus) Draft {
	out := d.clone()
	out.PaymentMethod = method
	out.PaymentStatus = status
	return out
}

// WithNotes sets free-form order notes.
func (d Draft) WithNotes(notes string) Draft {
	out := d.clone()
	out.Notes = notes
	return out
}

// WithReference sets the external payment reference (e.g. M-Pesa code).
func (d Draft) WithReference(ref string) Draft {
	out := d.clone()
	out.ReferenceNumber = ref
	return out
}

// Subtotal sums quantity times unit price over all lines. Service and
// product lines are priced identically.
func (d Draft) Subtotal() float64 {
	var sum float64
	for _, l := range d.Items {
		sum += l.TotalPrice()
	}
	return sum
}

// Total is the subtotal minus the flat discount, uncapped.
func (d Draft) Total() float64 {
	return d.Subtotal() - d.Discount
}

func (d Draft) indexOf(t entities.ItemType, id string) int {
	for i, l := range d.Items {
		if l.ItemType == t && l.ItemID == id {
			return i
		}
	}
	return -1
}

// clone copies the draft with its own backing array so mutations on the
// copy never alias the receiver's lines.
func (d Draft) clone() Draft {
	out := d
	if d.Items != nil {
		out.Items = make([]LineItem, len(d.Items))
		copy(out.Items, d.Items)
	}
	return out
}
