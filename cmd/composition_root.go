package cmd

import (
	"valuekit/internal/core/application/usecases/queries"
)

type CompositionRoot struct{}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{}
}

func (c *CompositionRoot) CreateGetGreetingQueryHandler() queries.GetGreetingQueryHandler {
	return queries.NewGetGreetingQueryHandler()
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler()
}
