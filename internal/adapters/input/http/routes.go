package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes func - Mounts every endpoint of the service on router
func RegisterRoutes(router fiber.Router, hdl *HTTPHandler) {
	router.Get("/", hdl.Root)
	router.Get("/health", hdl.HealthCheck)

	todos := router.Group("/todos")
	{
		todos.Post("/", hdl.CreateTodo)
		todos.Get("/", hdl.AllTodos)
		todos.Get("/:id", hdl.FindTodo)
		todos.Patch("/:id", hdl.UpdateTodo)
		todos.Delete("/:id", hdl.DeleteTodo)
	}

	labels := router.Group("/labels")
	{
		labels.Post("/", hdl.CreateLabel)
		labels.Get("/", hdl.AllLabels)
		labels.Delete("/:id", hdl.DeleteLabel)
	}
}
