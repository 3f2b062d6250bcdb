package api

import (
	"errors"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/auth"
	"github.com/example/taskboard/modules/todo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers holds the HTTP handlers for the task and auth endpoints.
type Handlers struct {
	authPort auth.AuthPort
	todoPort todo.TodoPort
}

// NewHandlers creates the HTTP handlers over the module ports.
func NewHandlers(authPort auth.AuthPort, todoPort todo.TodoPort) *Handlers {
	return &Handlers{
		authPort: authPort,
		todoPort: todoPort,
	}
}

// statusForCode maps a procedure error code to an HTTP status.
func statusForCode(code todo.ErrorCode) int {
	switch code {
	case todo.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case todo.CodeBadRequest:
		return fiber.StatusBadRequest
	case todo.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// procedureError translates a port error into the HTTP error envelope.
// Non-procedure errors (transport failures, bugs) become a 500.
func procedureError(c *fiber.Ctx, err error) error {
	var procErr *todo.ProcedureError
	if errors.As(err, &procErr) {
		return c.Status(statusForCode(procErr.Code)).JSON(ErrorResponse{
			Error:   string(procErr.Code),
			Message: procErr.Message,
			Fields:  procErr.Fields,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   string(todo.CodeInternal),
		Message: "internal server error",
	})
}

// CreateTask handles POST /api/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var input task.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   string(todo.CodeBadRequest),
			Message: "invalid request body",
		})
	}

	created, err := h.todoPort.CreateTask(c.UserContext(), sessionFromCtx(c), input)
	if err != nil {
		return procedureError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListTasks handles GET /api/tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.todoPort.GetTasks(c.UserContext(), sessionFromCtx(c))
	if err != nil {
		return procedureError(c, err)
	}
	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: len(tasks),
	})
}

// GetTask handles GET /api/tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	input := task.GetSingleTaskInput{TaskID: c.Params("id")}
	found, err := h.todoPort.GetSingleTask(c.UserContext(), sessionFromCtx(c), input)
	if err != nil {
		return procedureError(c, err)
	}
	return c.JSON(found)
}

// UpdateTask handles PUT /api/tasks/:id.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	var body UpdateTaskBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   string(todo.CodeBadRequest),
			Message: "invalid request body",
		})
	}

	input := task.UpdateTaskInput{
		TaskID: c.Params("id"),
		Title:  body.Title,
		Body:   body.Body,
	}
	updated, err := h.todoPort.UpdateTask(c.UserContext(), sessionFromCtx(c), input)
	if err != nil {
		return procedureError(c, err)
	}
	return c.JSON(updated)
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	input := task.DeleteTaskInput{TaskID: c.Params("id")}
	if err := h.todoPort.DeleteTask(c.UserContext(), sessionFromCtx(c), input); err != nil {
		return procedureError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SignIn handles GET /auth/signin. It returns the provider consent URL and a
// freshly generated state the caller must carry through the callback.
func (h *Handlers) SignIn(c *fiber.Ctx) error {
	state := uuid.New().String()
	url, err := h.authPort.AuthCodeURL(c.UserContext(), state)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   string(todo.CodeInternal),
			Message: "failed to build sign-in URL",
		})
	}
	return c.JSON(SignInURLResponse{
		URL:   url,
		State: state,
	})
}

// Callback handles GET /auth/callback. It exchanges the provider code for a
// session token.
func (h *Handlers) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   string(todo.CodeBadRequest),
			Message: "code query parameter is required",
		})
	}

	result, err := h.authPort.SignIn(c.UserContext(), code)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   string(todo.CodeUnauthorized),
			Message: "sign-in failed",
		})
	}
	return c.JSON(result)
}

// SignOut handles POST /auth/signout.
func (h *Handlers) SignOut(c *fiber.Ctx) error {
	if err := h.authPort.SignOut(c.UserContext(), bearerToken(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   string(todo.CodeInternal),
			Message: "sign-out failed",
		})
	}
	return c.JSON(auth.SignOutResponse{SignedOut: true})
}
