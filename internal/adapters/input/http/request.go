package http

import "todo-api/internal/domain"

type (
	// CreateTodoRequest struct - HTTP request DTO
	CreateTodoRequest struct {
		Text string `json:"text" validate:"required,min=1,max=100" form:"text"`
	}

	// UpdateTodoRequest struct - Absent fields keep their stored value
	UpdateTodoRequest struct {
		Text      *string `json:"text,omitempty" validate:"omitempty,min=1,max=100" form:"text"`
		Completed *bool   `json:"completed,omitempty" form:"completed"`
	}

	// CreateLabelRequest struct
	CreateLabelRequest struct {
		Name string `json:"name" validate:"required,min=1,max=100" form:"name"`
	}
)

// ToDomain func
func (r CreateTodoRequest) ToDomain() domain.CreateTodo {
	return domain.CreateTodo{Text: r.Text}
}

// ToDomain func
func (r UpdateTodoRequest) ToDomain() domain.UpdateTodo {
	return domain.UpdateTodo{
		Text:      r.Text,
		Completed: r.Completed,
	}
}
