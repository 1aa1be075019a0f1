package application

import (
	"context"

	"todo-api/internal/domain"
	"todo-api/internal/ports/input"
	"todo-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

var _ input.LabelService = (*LabelService)(nil)

// LabelService struct
type LabelService struct {
	repo output.LabelRepository
}

// NewLabelService func
func NewLabelService(repo output.LabelRepository) *LabelService {
	return &LabelService{
		repo: repo,
	}
}

// CreateLabel func
func (s *LabelService) CreateLabel(ctx context.Context, name string) (domain.Label, error) {
	label, err := s.repo.Create(ctx, name)
	if err != nil {
		logrus.Errorln(err)
		return domain.Label{}, err
	}
	return label, nil
}

// AllLabels func
func (s *LabelService) AllLabels(ctx context.Context) ([]domain.Label, error) {
	return s.repo.All(ctx)
}

// DeleteLabel func
func (s *LabelService) DeleteLabel(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
