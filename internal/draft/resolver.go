package draft

import (
	"context"
	"strings"

	"dukaprint/internal/domain/entities"
)

// Queries shorter than this never reach the backend; two characters is the
// least that usefully narrows a phone or name prefix.
const minSearchLength = 2

// CustomerDirectory looks up customers by name or phone fragment.
type CustomerDirectory interface {
	SearchCustomers(ctx context.Context, query string) ([]entities.Customer, error)
}

// Resolver finds customer records to attach to a draft. Attachment itself
// is Draft.WithCustomer / Draft.WithoutCustomer; the resolver only
// searches.
type Resolver struct {
	dir CustomerDirectory
}

func NewResolver(dir CustomerDirectory) *Resolver {
	return &Resolver{dir: dir}
}

// Search returns matching customers, or an empty result without any
// network call when the trimmed query is shorter than minSearchLength.
func (r *Resolver) Search(ctx context.Context, query string) ([]entities.Customer, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchLength {
		return nil, nil
	}
	return r.dir.SearchCustomers(ctx, query)
}
