package validator

import (
	"errors"
	"reflect"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func - Field names in messages follow the json tag
func New() Validator {
	v := validators.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {

	return v.validator.Struct(inf)
}

// Messages func - One readable line per failed field
func Messages(err error) []string {
	var errs validators.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" is required")
		case "min":
			messages = append(messages, fe.Field()+" must be at least "+fe.Param()+" characters")
		case "max":
			messages = append(messages, fe.Field()+" must be at most "+fe.Param()+" characters")
		default:
			messages = append(messages, fe.Field()+" failed on "+fe.Tag())
		}
	}
	return messages
}
