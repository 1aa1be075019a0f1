package http

import (
	"context"
	"math"
	"time"

	"todo-api/internal/ports/input"
	"todo-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Pinger interface - Anything the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.TodoService
	labels    input.LabelService
	pinger    Pinger
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.TodoService, labels input.LabelService, pinger Pinger) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		labels:    labels,
		pinger:    pinger,
		validator: validator.New(),
	}
}

// Root func
func (hdl *HTTPHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Hello, world!!")
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Reports whether the storage backend is reachable
// @Tags HEALTH
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := hdl.pinger.Ping(ctx); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// CreateTodo func
/* create todo */
// CreateTodo godoc
// @Summary Create todo
// @Description Create todo, completed starts as false
// @Tags TODO
// @Accept application/json
// @Success 201 {object} ResponseBody{data=domain.Todo}
// @Failure 400 {object} ResponseBody
// @Router /todos [post]
// @Produce json
// @param CreateTodo body CreateTodoRequest true "CreateTodo"
func (hdl *HTTPHandler) CreateTodo(c *fiber.Ctx) error {
	var request CreateTodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest.withMessage(validator.Messages(err)...)})
	}
	todo, err := hdl.srv.CreateTodo(c.UserContext(), request.ToDomain())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: todo})
}

// FindTodo func
// FindTodo godoc
// @Summary Get todo
// @Description Get one todo by id
// @Tags TODO
// @Success 200 {object} ResponseBody{data=domain.Todo}
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [get]
// @Produce json
// @param id path int true "todo id"
func (hdl *HTTPHandler) FindTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	todo, err := hdl.srv.FindTodo(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: todo})
}

// AllTodos func
// AllTodos godoc
// @Summary List todos
// @Description List every todo
// @Tags TODO
// @Success 200 {object} ResponseBody{data=[]domain.Todo}
// @Router /todos [get]
// @Produce json
func (hdl *HTTPHandler) AllTodos(c *fiber.Ctx) error {
	todos, err := hdl.srv.AllTodos(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: todos})
}

// UpdateTodo func
/* update todo */
// UpdateTodo godoc
// @Summary Update todo
// @Description Update text and/or completed, absent fields are kept
// @Tags TODO
// @Accept application/json
// @Success 200 {object} ResponseBody{data=domain.Todo}
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [patch]
// @Produce json
// @param id path int true "todo id"
// @param UpdateTodo body UpdateTodoRequest true "UpdateTodo"
func (hdl *HTTPHandler) UpdateTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	var request UpdateTodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest.withMessage(validator.Messages(err)...)})
	}
	todo, err := hdl.srv.UpdateTodo(c.UserContext(), id, request.ToDomain())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: todo})
}

// DeleteTodo func
/* delete todo */
// DeleteTodo godoc
// @Summary Delete todo
// @Description Delete todo
// @Tags TODO
// @Success 204
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [delete]
// @param id path int true "todo id"
func (hdl *HTTPHandler) DeleteTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.srv.DeleteTodo(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads the :id route param, ids are 1..MaxInt32 like the integer columns
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 || id > math.MaxInt32 {
		return 0, false
	}
	return id, true
}
