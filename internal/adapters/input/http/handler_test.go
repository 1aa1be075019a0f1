package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo-api/internal/adapters/output/memory"
	"todo-api/internal/application"
	"todo-api/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todoBody struct {
	Status Status      `json:"status"`
	Data   domain.Todo `json:"data"`
}

type todosBody struct {
	Status Status        `json:"status"`
	Data   []domain.Todo `json:"data"`
}

type labelBody struct {
	Status Status       `json:"status"`
	Data   domain.Label `json:"data"`
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// failingTodoService answers every call with err
type failingTodoService struct {
	err error
}

func (s failingTodoService) CreateTodo(context.Context, domain.CreateTodo) (domain.Todo, error) {
	return domain.Todo{}, s.err
}

func (s failingTodoService) FindTodo(context.Context, int) (domain.Todo, error) {
	return domain.Todo{}, s.err
}

func (s failingTodoService) AllTodos(context.Context) ([]domain.Todo, error) {
	return nil, s.err
}

func (s failingTodoService) UpdateTodo(context.Context, int, domain.UpdateTodo) (domain.Todo, error) {
	return domain.Todo{}, s.err
}

func (s failingTodoService) DeleteTodo(context.Context, int) error {
	return s.err
}

func newTestApp(hdl *HTTPHandler) *fiber.App {
	app := fiber.New()
	app.Use(AccessLog())
	RegisterRoutes(app, hdl)
	return app
}

func newMemoryApp() *fiber.App {
	repo := memory.NewTodoRepository()
	hdl := New(
		application.NewTodoService(repo, nil),
		application.NewLabelService(memory.NewLabelRepository()),
		repo,
	)
	return newTestApp(hdl)
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRoot(t *testing.T) {
	app := newMemoryApp()

	resp := do(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!!", string(body))
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDIsKept(t *testing.T) {
	app := newMemoryApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestTodoLifecycle(t *testing.T) {
	app := newMemoryApp()

	resp := do(t, app, http.MethodPost, "/todos", `{"text":"todo text"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created todoBody
	decode(t, resp, &created)
	assert.Equal(t, domain.Todo{ID: 1, Text: "todo text", Completed: false}, created.Data)
	assert.Equal(t, http.StatusCreated, created.Status.Code)

	resp = do(t, app, http.MethodGet, "/todos/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found todoBody
	decode(t, resp, &found)
	assert.Equal(t, created.Data, found.Data)

	resp = do(t, app, http.MethodPatch, "/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated todoBody
	decode(t, resp, &updated)
	assert.Equal(t, domain.Todo{ID: 1, Text: "todo text", Completed: true}, updated.Data)

	resp = do(t, app, http.MethodPatch, "/todos/1", `{"text":"update todo"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &updated)
	assert.Equal(t, domain.Todo{ID: 1, Text: "update todo", Completed: true}, updated.Data)

	resp = do(t, app, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all todosBody
	decode(t, resp, &all)
	assert.Equal(t, []domain.Todo{updated.Data}, all.Data)

	resp = do(t, app, http.MethodDelete, "/todos/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/todos/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/todos/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var missing todoBody
	decode(t, resp, &missing)
	assert.Equal(t, []string{"not found, id is 1"}, missing.Status.Message)
}

func TestAllTodosEmpty(t *testing.T) {
	app := newMemoryApp()

	resp := do(t, app, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all todosBody
	decode(t, resp, &all)
	assert.Empty(t, all.Data)
}

func TestCreateTodoValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty text", body: `{"text":""}`},
		{name: "missing text", body: `{}`},
		{name: "text too long", body: `{"text":"` + strings.Repeat("a", 101) + `"}`},
		{name: "malformed json", body: `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newMemoryApp()

			resp := do(t, app, http.MethodPost, "/todos", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			// nothing reached the repository
			resp = do(t, app, http.MethodGet, "/todos", "")
			var all todosBody
			decode(t, resp, &all)
			assert.Empty(t, all.Data)
		})
	}
}

func TestCreateTodoAcceptsHundredRunes(t *testing.T) {
	app := newMemoryApp()
	text := strings.Repeat("ü", 100)

	resp := do(t, app, http.MethodPost, "/todos", `{"text":"`+text+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created todoBody
	decode(t, resp, &created)
	assert.Equal(t, text, created.Data.Text)
}

func TestUpdateTodoErrors(t *testing.T) {
	app := newMemoryApp()
	do(t, app, http.MethodPost, "/todos", `{"text":"todo text"}`)

	resp := do(t, app, http.MethodPatch, "/todos/1", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var invalid todoBody
	decode(t, resp, &invalid)
	assert.Equal(t, []string{"text must be at least 1 characters"}, invalid.Status.Message)

	resp = do(t, app, http.MethodPatch, "/todos/1", `{"text":"`+strings.Repeat("ü", 101)+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &invalid)
	assert.Equal(t, []string{"text must be at most 100 characters"}, invalid.Status.Message)

	resp = do(t, app, http.MethodPatch, "/todos/99", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPatch, "/todos/abc", `{"completed":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/todos/1", "")
	var found todoBody
	decode(t, resp, &found)
	assert.Equal(t, domain.Todo{ID: 1, Text: "todo text"}, found.Data)
}

func TestBadIDs(t *testing.T) {
	app := newMemoryApp()

	for _, target := range []string{"/todos/abc", "/todos/0", "/todos/-3", "/todos/2147483648", "/todos/9999999999"} {
		resp := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
	}
	resp := do(t, app, http.MethodPatch, "/todos/2147483648", `{"completed":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, app, http.MethodDelete, "/todos/2147483648", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, app, http.MethodDelete, "/labels/2147483648", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, app, http.MethodDelete, "/labels/x", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// the largest int4 id is still a valid id
	resp = do(t, app, http.MethodGet, "/todos/2147483647", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnexpectedErrorsAre500(t *testing.T) {
	hdl := New(
		failingTodoService{err: domain.NewUnexpectedError(errors.New("connection refused"))},
		application.NewLabelService(memory.NewLabelRepository()),
		memory.NewTodoRepository(),
	)
	app := newTestApp(hdl)

	resp := do(t, app, http.MethodPost, "/todos", `{"text":"todo text"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/todos/1", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body todoBody
	decode(t, resp, &body)
	assert.Equal(t, InternalServerError, body.Status)
}

func TestLabels(t *testing.T) {
	app := newMemoryApp()

	resp := do(t, app, http.MethodPost, "/labels", `{"name":"home"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created labelBody
	decode(t, resp, &created)
	assert.Equal(t, "home", created.Data.Name)

	resp = do(t, app, http.MethodPost, "/labels", `{"name":"home"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/labels", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/labels", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all struct {
		Data []domain.Label `json:"data"`
	}
	decode(t, resp, &all)
	assert.Equal(t, []domain.Label{created.Data}, all.Data)

	resp = do(t, app, http.MethodDelete, "/labels/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/labels/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	app := newMemoryApp()
	resp := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	hdl := New(
		failingTodoService{},
		application.NewLabelService(memory.NewLabelRepository()),
		pingerFunc(func(context.Context) error { return errors.New("database is down") }),
	)
	resp = do(t, newTestApp(hdl), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
