package output

import (
	"context"

	"todo-api/internal/domain"
)

// EventPublisher interface - Output port
// Delivers todo change events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.TodoEvent) error
}
