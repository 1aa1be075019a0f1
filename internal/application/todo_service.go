package application

import (
	"context"

	"todo-api/internal/domain"
	"todo-api/internal/ports/input"
	"todo-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

var _ input.TodoService = (*TodoService)(nil)

// TodoService struct - Application service implementing use cases
type TodoService struct {
	repo      output.TodoRepository
	publisher output.EventPublisher
}

// NewTodoService func - Creates new todo service.
// A nil publisher discards events.
func NewTodoService(repo output.TodoRepository, publisher output.EventPublisher) *TodoService {
	if publisher == nil {
		publisher = NopEventPublisher{}
	}
	return &TodoService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateTodo func - Use case: Create a new todo
func (s *TodoService) CreateTodo(ctx context.Context, payload domain.CreateTodo) (domain.Todo, error) {
	todo, err := s.repo.Create(ctx, payload)
	if err != nil {
		logrus.Errorln(err)
		return domain.Todo{}, err
	}
	s.publish(ctx, domain.NewTodoEvent(domain.TodoEventCreated, todo.ID, &todo))
	return todo, nil
}

// FindTodo func - Use case: Get one todo
func (s *TodoService) FindTodo(ctx context.Context, id int) (domain.Todo, error) {
	return s.repo.Find(ctx, id)
}

// AllTodos func - Use case: List every todo
func (s *TodoService) AllTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.repo.All(ctx)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return todos, nil
}

// UpdateTodo func - Use case: Update an existing todo, absent fields are kept
func (s *TodoService) UpdateTodo(ctx context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error) {
	todo, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return domain.Todo{}, err
	}
	s.publish(ctx, domain.NewTodoEvent(domain.TodoEventUpdated, todo.ID, &todo))
	return todo, nil
}

// DeleteTodo func - Use case: Delete a todo
func (s *TodoService) DeleteTodo(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, domain.NewTodoEvent(domain.TodoEventDeleted, id, nil))
	return nil
}

// publish never fails the use case, the mutation has already happened
func (s *TodoService) publish(ctx context.Context, event domain.TodoEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logrus.WithFields(logrus.Fields{
			"event":   event.Type,
			"todo_id": event.TodoID,
		}).WithError(err).Error("Publish todo event failed")
	}
}

// NopEventPublisher struct - Used when no broker is configured
type NopEventPublisher struct{}

// Publish func
func (NopEventPublisher) Publish(context.Context, domain.TodoEvent) error {
	return nil
}
