package todo

import (
	"errors"
	"fmt"

	"github.com/example/taskboard/domain/task"
)

// ErrTaskNotFound is returned when the requested task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ErrorCode classifies a procedure failure.
type ErrorCode string

const (
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeInternal     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ProcedureError is the structured failure a procedure returns to its caller.
// It travels inside the response envelope so the code and per-field detail
// survive the service boundary.
type ProcedureError struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Fields  []task.FieldError `json:"fields,omitempty"`
}

func (e *ProcedureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unauthorized builds the failure for a missing or invalid session.
func Unauthorized() *ProcedureError {
	return &ProcedureError{Code: CodeUnauthorized, Message: "authenticated session required"}
}

// BadRequest builds the failure for a schema violation, carrying the
// per-field detail.
func BadRequest(verr *task.ValidationError) *ProcedureError {
	return &ProcedureError{Code: CodeBadRequest, Message: "invalid input", Fields: verr.Fields}
}

// NotFound builds the failure for a lookup that matched no task.
func NotFound(taskID string) *ProcedureError {
	return &ProcedureError{Code: CodeNotFound, Message: fmt.Sprintf("task not found: %s", taskID)}
}

// Internal builds the failure for an unclassified persistence error.
func Internal(err error) *ProcedureError {
	return &ProcedureError{Code: CodeInternal, Message: err.Error()}
}
