package output

import (
	"context"

	"todo-api/internal/domain"
)

// TodoRepository interface - Output port
// Defines what the application needs from todo persistence.
// Implementations must be safe for concurrent use and must return copies,
// never references to stored records.
type TodoRepository interface {
	// Create stores a new not completed todo and returns the stored copy.
	Create(ctx context.Context, payload domain.CreateTodo) (domain.Todo, error)

	// Find returns the todo with id.
	// Returns *domain.NotFoundError if no todo exists.
	Find(ctx context.Context, id int) (domain.Todo, error)

	// All returns every stored todo in a stable, backend defined order.
	All(ctx context.Context) ([]domain.Todo, error)

	// Update merges the present fields of payload over the stored todo and
	// returns the new state.
	// Returns *domain.NotFoundError if no todo exists.
	Update(ctx context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error)

	// Delete removes the todo with id.
	// Returns *domain.NotFoundError if no todo exists, so a second delete fails.
	Delete(ctx context.Context, id int) error
}
