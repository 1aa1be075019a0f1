package memory

import (
	"context"
	"sort"
	"sync"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"
)

var _ output.LabelRepository = (*LabelRepository)(nil)

// LabelRepository struct - Output adapter for in-memory label storage
type LabelRepository struct {
	mu     sync.RWMutex
	labels map[int]domain.Label
	lastID int
}

// NewLabelRepository func
func NewLabelRepository() *LabelRepository {
	return &LabelRepository{
		labels: make(map[int]domain.Label),
	}
}

// Create func
func (r *LabelRepository) Create(_ context.Context, name string) (domain.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, label := range r.labels {
		if label.Name == name {
			return domain.Label{}, domain.NewDuplicateLabelError(name)
		}
	}
	r.lastID++
	label := domain.Label{ID: r.lastID, Name: name}
	r.labels[label.ID] = label
	return label, nil
}

// All func
func (r *LabelRepository) All(_ context.Context) ([]domain.Label, error) {
	r.mu.RLock()
	labels := make([]domain.Label, 0, len(r.labels))
	for _, label := range r.labels {
		labels = append(labels, label)
	}
	r.mu.RUnlock()

	sort.Slice(labels, func(i, j int) bool {
		return labels[i].ID < labels[j].ID
	})
	return labels, nil
}

// Delete func
func (r *LabelRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.labels[id]; !exists {
		return domain.NewNotFoundError(id)
	}
	delete(r.labels, id)
	return nil
}
