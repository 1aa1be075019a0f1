package domain

// Todo struct - Core domain entity
type Todo struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Text      string `json:"text" gorm:"type:varchar(100);not null"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
}

// TableName func
func (t *Todo) TableName() string {
	return "todos"
}

// NewTodo func - Creates a not yet completed todo
func NewTodo(id int, text string) Todo {
	return Todo{
		ID:   id,
		Text: text,
	}
}

// CreateTodo struct - Input for creating a todo
type CreateTodo struct {
	Text string
}

// UpdateTodo struct - Input for a partial update.
// A nil field is absent and keeps the stored value.
type UpdateTodo struct {
	Text      *string
	Completed *bool
}

// Merge returns the todo with every present field of the payload applied
func (p UpdateTodo) Merge(current Todo) Todo {
	merged := current
	if p.Text != nil {
		merged.Text = *p.Text
	}
	if p.Completed != nil {
		merged.Completed = *p.Completed
	}
	return merged
}
