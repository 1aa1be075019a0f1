package output

import (
	"context"

	"todo-api/internal/domain"
)

// LabelRepository interface - Output port
type LabelRepository interface {
	// Create stores a label. Names are unique: a second label with the
	// same name fails with an error matching domain.ErrDuplicate.
	Create(ctx context.Context, name string) (domain.Label, error)

	// All returns every label ordered by id ascending.
	All(ctx context.Context) ([]domain.Label, error)

	// Delete removes the label with id.
	// Returns *domain.NotFoundError if no label exists.
	Delete(ctx context.Context, id int) error
}
