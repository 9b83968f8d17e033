// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations: each query is a
// constructor-guarded request object paired with a handler that produces a
// read model.
package queries

import (
	"errors"

	"valuekit/internal/pkg/guard"
)

var ErrGetGreetingQueryIsNotConstructed = errors.New(
	"GetGreetingQuery must be created via NewGetGreetingQuery constructor",
)

// GetGreetingQuery retrieves the service greeting.
//
// Example:
//
//	query := NewGetGreetingQuery()
//	handler := NewGetGreetingQueryHandler()
//
//	greeting, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve greeting: %w", err)
//	}
//	fmt.Println(greeting.Message)
type GetGreetingQuery struct {
	guard guard.ConstructorGuard
}

// NewGetGreetingQuery creates a query to retrieve the greeting.
// This is a parameterless query.
func NewGetGreetingQuery() GetGreetingQuery {
	return GetGreetingQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetGreetingQueryIsNotConstructed if validation fails.
func (q GetGreetingQuery) Validate() error {
	return q.guard.Validate(ErrGetGreetingQueryIsNotConstructed)
}

// GetGreetingQueryResponse is the greeting read model.
type GetGreetingQueryResponse struct {
	Message string
}
