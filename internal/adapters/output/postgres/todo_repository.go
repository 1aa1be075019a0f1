package postgres

import (
	"context"
	"database/sql"
	"errors"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	insertTodoSQL = `INSERT INTO todos (text, completed) VALUES (?, false) RETURNING id, text, completed`

	// NULL arguments keep the stored column
	updateTodoSQL = `UPDATE todos SET text = COALESCE(?, text), completed = COALESCE(?, completed) WHERE id = ? RETURNING id, text, completed`
)

var _ output.TodoRepository = (*TodoRepository)(nil)

// TodoRepository struct - Secondary/Driven adapter for PostgreSQL
type TodoRepository struct {
	dbGorm *gorm.DB
}

// NewTodoRepository func - Creates new PostgreSQL repository
func NewTodoRepository(dbGorm *gorm.DB) *TodoRepository {
	return &TodoRepository{
		dbGorm: dbGorm,
	}
}

// Create func - Inserts a todo, the id comes from the identity column
func (p *TodoRepository) Create(ctx context.Context, payload domain.CreateTodo) (domain.Todo, error) {
	var todo domain.Todo
	if err := p.dbGorm.WithContext(ctx).Raw(insertTodoSQL, payload.Text).Scan(&todo).Error; err != nil {
		logrus.Errorln(err)
		return domain.Todo{}, domain.NewUnexpectedError(err)
	}
	return todo, nil
}

// Find func
func (p *TodoRepository) Find(ctx context.Context, id int) (domain.Todo, error) {
	var todo domain.Todo
	err := p.dbGorm.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Todo{}, domain.NewNotFoundError(id)
	}
	if err != nil {
		logrus.Errorln(err)
		return domain.Todo{}, domain.NewUnexpectedError(err)
	}
	return todo, nil
}

// All func - Newest first
func (p *TodoRepository) All(ctx context.Context) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0)
	if err := p.dbGorm.WithContext(ctx).Order("id desc").Find(&todos).Error; err != nil {
		logrus.Errorln(err)
		return nil, domain.NewUnexpectedError(err)
	}
	return todos, nil
}

// Update func
func (p *TodoRepository) Update(ctx context.Context, id int, payload domain.UpdateTodo) (domain.Todo, error) {
	var todo domain.Todo
	tx := p.dbGorm.WithContext(ctx).
		Raw(updateTodoSQL, nullString(payload.Text), nullBool(payload.Completed), id).
		Scan(&todo)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return domain.Todo{}, domain.NewUnexpectedError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.Todo{}, domain.NewNotFoundError(id)
	}
	return todo, nil
}

// Delete func
func (p *TodoRepository) Delete(ctx context.Context, id int) error {
	tx := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.Todo{})
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return domain.NewUnexpectedError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NewNotFoundError(id)
	}
	return nil
}

// Ping func - Checks the pooled connection is alive
func (p *TodoRepository) Ping(ctx context.Context) error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
