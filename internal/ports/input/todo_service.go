package input

import (
	"context"

	"todo-api/internal/domain"
)

// TodoService interface - Input port (use case)
// Defines what the application can do with todos
type TodoService interface {
	CreateTodo(ctx context.Context, payload domain.CreateTodo) (domain.Todo, error)
	FindTodo(ctx context.Context, id int) (domain.Todo, error)
	AllTodos(ctx context.Context) ([]domain.Todo, error)
	UpdateTodo(ctx context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}
