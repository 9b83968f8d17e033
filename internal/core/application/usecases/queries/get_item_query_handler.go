package queries

import (
	"context"
)

// GetItemQueryHandler resolves item queries. There is no item store behind
// this service, so the read model echoes the request parameters back.
type GetItemQueryHandler struct{}

// NewGetItemQueryHandler creates a handler for item queries.
func NewGetItemQueryHandler() GetItemQueryHandler {
	return GetItemQueryHandler{}
}

// Handle executes the query and returns the item read model.
func (h GetItemQueryHandler) Handle(
	_ context.Context,
	query GetItemQuery,
) (GetItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemQueryResponse{}, err
	}

	response := GetItemQueryResponse{ItemID: query.ItemID()}
	if q, ok := query.Q(); ok {
		response.Q = &q
	}

	return response, nil
}
