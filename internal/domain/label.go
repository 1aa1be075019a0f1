package domain

import "fmt"

// Label struct - Name that can be attached to todos
type Label struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName func
func (l *Label) TableName() string {
	return "labels"
}

// NewDuplicateLabelError func - Label names are unique per backend
func NewDuplicateLabelError(name string) *UnexpectedError {
	return &UnexpectedError{
		Detail: fmt.Sprintf("label %q already exists", name),
		Err:    ErrDuplicate,
	}
}
