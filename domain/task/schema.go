package task

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateTaskInput is the validated input for creating a task.
type CreateTaskInput struct {
	Title string `json:"title" validate:"max=20"`
	Body  string `json:"body" validate:"min=5"`
}

// UpdateTaskInput is the validated input for updating a task. It is also the
// shape of the client-side edited-task state: the zero value (empty TaskID)
// means no task is being edited.
type UpdateTaskInput struct {
	TaskID string `json:"taskId" validate:"required,cuid"`
	Title  string `json:"title" validate:"max=20"`
	Body   string `json:"body" validate:"min=5"`
}

// GetSingleTaskInput is the validated input for fetching one task.
type GetSingleTaskInput struct {
	TaskID string `json:"taskId" validate:"required,cuid"`
}

// DeleteTaskInput is the validated input for deleting a task.
type DeleteTaskInput struct {
	TaskID string `json:"taskId" validate:"required,cuid"`
}

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field violations for one input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Has reports whether the error names the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field name, matching the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cuid", func(fl validator.FieldLevel) bool {
		return IsValidID(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks the input against its schema. No side effects.
func (in CreateTaskInput) Validate() *ValidationError { return check(in) }

// Validate checks the input against its schema. No side effects.
func (in UpdateTaskInput) Validate() *ValidationError { return check(in) }

// Validate checks the input against its schema. No side effects.
func (in GetSingleTaskInput) Validate() *ValidationError { return check(in) }

// Validate checks the input against its schema. No side effects.
func (in DeleteTaskInput) Validate() *ValidationError { return check(in) }

func check(input any) *ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "input", Message: err.Error()}}}
	}

	ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "cuid":
		return "must be a valid task id"
	default:
		return "is invalid"
	}
}
