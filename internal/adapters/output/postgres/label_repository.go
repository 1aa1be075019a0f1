package postgres

import (
	"context"
	"errors"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const insertLabelSQL = `INSERT INTO labels (name) VALUES (?) RETURNING id, name`

var _ output.LabelRepository = (*LabelRepository)(nil)

// LabelRepository struct - Secondary/Driven adapter for PostgreSQL labels
type LabelRepository struct {
	dbGorm *gorm.DB
}

// NewLabelRepository func
func NewLabelRepository(dbGorm *gorm.DB) *LabelRepository {
	return &LabelRepository{
		dbGorm: dbGorm,
	}
}

// Create func - Rejects names that already exist
func (p *LabelRepository) Create(ctx context.Context, name string) (domain.Label, error) {
	var existing domain.Label
	tx := p.dbGorm.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&existing)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return domain.Label{}, domain.NewUnexpectedError(tx.Error)
	}
	if tx.RowsAffected > 0 {
		return domain.Label{}, domain.NewDuplicateLabelError(name)
	}

	var label domain.Label
	err := p.dbGorm.WithContext(ctx).Raw(insertLabelSQL, name).Scan(&label).Error
	// a concurrent insert can still win between the lookup and the insert
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Label{}, domain.NewDuplicateLabelError(name)
	}
	if err != nil {
		logrus.Errorln(err)
		return domain.Label{}, domain.NewUnexpectedError(err)
	}
	return label, nil
}

// All func
func (p *LabelRepository) All(ctx context.Context) ([]domain.Label, error) {
	labels := make([]domain.Label, 0)
	if err := p.dbGorm.WithContext(ctx).Order("id asc").Find(&labels).Error; err != nil {
		logrus.Errorln(err)
		return nil, domain.NewUnexpectedError(err)
	}
	return labels, nil
}

// Delete func
func (p *LabelRepository) Delete(ctx context.Context, id int) error {
	tx := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.Label{})
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return domain.NewUnexpectedError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NewNotFoundError(id)
	}
	return nil
}
