package http

import (
	"net/http"

	"valuekit/internal/core/application/usecases/queries"
	"valuekit/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	getGreetingHandler queries.GetGreetingQueryHandler
	getItemHandler     queries.GetItemQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getGreetingHandler queries.GetGreetingQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
) *Server {
	return &Server{
		getGreetingHandler: getGreetingHandler,
		getItemHandler:     getItemHandler,
	}
}

// GetRoot handles GET / - returns the service greeting.
func (s *Server) GetRoot(ctx echo.Context) error {
	query := queries.NewGetGreetingQuery()

	greeting, err := s.getGreetingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve greeting",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Greeting{
		Message: greeting.Message,
	})
}

// GetItem handles GET /items/{item_id} - returns the requested item.
// The generated wrapper rejects non-integer IDs with 400 before this runs.
func (s *Server) GetItem(ctx echo.Context, itemId int, params servers.GetItemParams) error {
	var query queries.GetItemQuery
	if params.Q != nil {
		query = queries.NewGetItemQueryWithQ(itemId, *params.Q)
	} else {
		query = queries.NewGetItemQuery(itemId)
	}

	item, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve item",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Item{
		ItemId: item.ItemID,
		Q:      item.Q,
	})
}
