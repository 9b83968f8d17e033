package queries

import (
	"errors"

	"valuekit/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single item by its numeric identifier, optionally
// carrying a free-form query string.
//
// Example:
//
//	query := NewGetItemQuery(42, "test")
//	handler := NewGetItemQueryHandler()
//
//	item, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve item: %w", err)
//	}
type GetItemQuery struct {
	itemID int
	q      string
	hasQ   bool
	guard  guard.ConstructorGuard
}

// NewGetItemQuery creates a query for the item with the given identifier.
func NewGetItemQuery(itemID int) GetItemQuery {
	return GetItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewGetItemQueryWithQ creates a query carrying a free-form query string
// alongside the item identifier.
func NewGetItemQueryWithQ(itemID int, q string) GetItemQuery {
	query := NewGetItemQuery(itemID)
	query.q = q
	query.hasQ = true
	return query
}

// ItemID returns the requested item identifier.
func (q GetItemQuery) ItemID() int {
	return q.itemID
}

// Q returns the query string and whether one was supplied.
func (q GetItemQuery) Q() (string, bool) {
	return q.q, q.hasQ
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetItemQueryIsNotConstructed if validation fails.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// GetItemQueryResponse is the item read model. Q is nil when no query string
// was supplied.
type GetItemQueryResponse struct {
	ItemID int
	Q      *string
}
