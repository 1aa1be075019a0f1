package domain

import (
	"errors"
	"fmt"
	"testing"
)

// TestNewTodo tests that new todos start not completed
func TestNewTodo(t *testing.T) {
	todo := NewTodo(1, "todo text")

	if todo.ID != 1 {
		t.Errorf("expected ID 1, got %d", todo.ID)
	}
	if todo.Text != "todo text" {
		t.Errorf("expected Text 'todo text', got %s", todo.Text)
	}
	if todo.Completed {
		t.Error("expected new todo to not be completed")
	}
}

// TestUpdateTodoMerge tests that absent fields keep the current value
func TestUpdateTodoMerge(t *testing.T) {
	current := Todo{ID: 7, Text: "before", Completed: true}
	text := "after"
	done := false

	t.Run("text only", func(t *testing.T) {
		merged := UpdateTodo{Text: &text}.Merge(current)
		if merged.Text != "after" || !merged.Completed {
			t.Errorf("expected {after true}, got %+v", merged)
		}
	})

	t.Run("completed only", func(t *testing.T) {
		merged := UpdateTodo{Completed: &done}.Merge(current)
		if merged.Text != "before" || merged.Completed {
			t.Errorf("expected {before false}, got %+v", merged)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		merged := UpdateTodo{}.Merge(current)
		if merged != current {
			t.Errorf("expected %+v, got %+v", current, merged)
		}
	})

	if merged := (UpdateTodo{Text: &text}).Merge(current); merged.ID != 7 {
		t.Errorf("expected ID to be kept, got %d", merged.ID)
	}
}

// TestNotFoundError tests errors.Is and errors.As through wrapping
func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("find todo: %w", NewNotFoundError(2))

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected wrapped NotFoundError to match ErrNotFound")
	}
	if errors.Is(err, ErrUnexpected) {
		t.Error("expected NotFoundError to not match ErrUnexpected")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 2 {
		t.Errorf("expected NotFoundError with ID 2, got %v", nf)
	}
	if nf.Error() != "not found, id is 2" {
		t.Errorf("unexpected message %q", nf.Error())
	}
}

// TestUnexpectedError tests that the cause stays reachable
func TestUnexpectedError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnexpectedError(cause)

	if !errors.Is(err, ErrUnexpected) {
		t.Error("expected UnexpectedError to match ErrUnexpected")
	}
	if !errors.Is(err, cause) {
		t.Error("expected UnexpectedError to unwrap to its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("expected UnexpectedError to not match ErrNotFound")
	}
	if err.Detail != "connection refused" {
		t.Errorf("expected Detail 'connection refused', got %s", err.Detail)
	}
}

// TestDuplicateLabelError tests duplicate labels are unexpected errors
func TestDuplicateLabelError(t *testing.T) {
	err := NewDuplicateLabelError("home")

	if !errors.Is(err, ErrUnexpected) {
		t.Error("expected duplicate label error to match ErrUnexpected")
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Error("expected duplicate label error to match ErrDuplicate")
	}
}
