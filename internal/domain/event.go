package domain

import "time"

// TodoEventType type
type TodoEventType string

const (
	// TodoEventCreated const
	TodoEventCreated TodoEventType = "created"
	// TodoEventUpdated const
	TodoEventUpdated TodoEventType = "updated"
	// TodoEventDeleted const
	TodoEventDeleted TodoEventType = "deleted"
)

// TodoEvent struct - Change notification emitted after a successful mutation.
// Todo is nil for deletions.
type TodoEvent struct {
	Type       TodoEventType `json:"type"`
	TodoID     int           `json:"todo_id"`
	Todo       *Todo         `json:"todo,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewTodoEvent func
func NewTodoEvent(eventType TodoEventType, id int, todo *Todo) TodoEvent {
	return TodoEvent{
		Type:       eventType,
		TodoID:     id,
		Todo:       todo,
		OccurredAt: time.Now().UTC(),
	}
}
