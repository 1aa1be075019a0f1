package memory

import (
	"context"
	"sort"
	"sync"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"
)

// Compile-time check to ensure TodoRepository implements output.TodoRepository
var _ output.TodoRepository = (*TodoRepository)(nil)

// TodoRepository struct - Output adapter for in-memory todo storage
// A single RWMutex guards the whole store: Create, Update and Delete take the
// write lock, Find and All the read lock.
type TodoRepository struct {
	mu     sync.RWMutex
	todos  map[int]domain.Todo
	lastID int
}

// NewTodoRepository creates an empty in-memory todo repository.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		todos: make(map[int]domain.Todo),
	}
}

// Create stores a new todo under the next id.
// Ids come from a monotonic counter, so an id is never handed out twice
// even after deletions.
func (r *TodoRepository) Create(_ context.Context, payload domain.CreateTodo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	todo := domain.NewTodo(r.lastID, payload.Text)
	r.todos[todo.ID] = todo
	return todo, nil
}

// Find returns a copy of the todo with id.
func (r *TodoRepository) Find(_ context.Context, id int) (domain.Todo, error) {
	r.mu.RLock()
	todo, exists := r.todos[id]
	r.mu.RUnlock()

	if !exists {
		return domain.Todo{}, domain.NewNotFoundError(id)
	}
	return todo, nil
}

// All returns every todo in insertion order.
func (r *TodoRepository) All(_ context.Context) ([]domain.Todo, error) {
	r.mu.RLock()
	todos := make([]domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}
	r.mu.RUnlock()

	// ids are allocated increasingly, id order is insertion order
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID < todos[j].ID
	})
	return todos, nil
}

// Update merges payload over the stored todo.
func (r *TodoRepository) Update(_ context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.todos[id]
	if !exists {
		return domain.Todo{}, domain.NewNotFoundError(id)
	}
	todo := payload.Merge(current)
	r.todos[id] = todo
	return todo, nil
}

// Delete removes the todo with id.
func (r *TodoRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.todos[id]; !exists {
		return domain.NewNotFoundError(id)
	}
	delete(r.todos, id)
	return nil
}

// Ping always succeeds, the store lives in process.
func (r *TodoRepository) Ping(_ context.Context) error {
	return nil
}
