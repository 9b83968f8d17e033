package queries

import (
	"context"
)

// greetingMessage is the fixed message the service answers with on its root
// endpoint.
const greetingMessage = "Hello from valuekit!"

// GetGreetingQueryHandler produces the service greeting.
type GetGreetingQueryHandler struct{}

// NewGetGreetingQueryHandler creates a handler for greeting queries.
func NewGetGreetingQueryHandler() GetGreetingQueryHandler {
	return GetGreetingQueryHandler{}
}

// Handle executes the query and returns the greeting read model.
func (h GetGreetingQueryHandler) Handle(
	_ context.Context,
	query GetGreetingQuery,
) (GetGreetingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetGreetingQueryResponse{}, err
	}

	return GetGreetingQueryResponse{Message: greetingMessage}, nil
}
