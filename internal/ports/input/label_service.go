package input

import (
	"context"

	"todo-api/internal/domain"
)

// LabelService interface - Input port (use case)
type LabelService interface {
	CreateLabel(ctx context.Context, name string) (domain.Label, error)
	AllLabels(ctx context.Context) ([]domain.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}
