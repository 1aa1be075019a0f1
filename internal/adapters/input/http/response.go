package http

import (
	"errors"
	"net/http"

	"todo-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// Created response
	Created = Status{Code: http.StatusCreated, Message: []string{"Created"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ConFlict response
	ConFlict = Status{Code: http.StatusConflict, Message: []string{"Sorry, Data is conflict"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Sorry, Service is unavailable"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// withMessage returns a copy of s carrying msgs instead of the default message
func (s Status) withMessage(msgs ...string) Status {
	s.Message = msgs
	return s
}

// respondError maps domain errors onto the response envelope
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound.withMessage(err.Error())})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(ResponseBody{Status: ConFlict.withMessage(err.Error())})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
}
