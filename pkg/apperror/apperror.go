package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)

// FieldErrors maps a form field name to the list of human-readable
// messages attached to it by validation.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Fields    FieldErrors
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (details: %s, cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func New(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewValidationFailed carries per-field messages back to the form that
// produced the bad input.
func NewValidationFailed(fields FieldErrors) *AppError {
	return &AppError{
		BaseError: ErrInvalidInput,
		Message:   "La validation a échoué.",
		Fields:    fields,
	}
}

func NewInvalidInput(details string, err error) *AppError {
	return New(ErrInvalidInput, "Les données fournies sont invalides.", details, err)
}

// NewNotFound is used for both missing records and records owned by
// another user. The two cases are never distinguished in responses.
func NewNotFound(resource, identifier string) *AppError {
	return New(
		ErrNotFound,
		"Opération non autorisée ou élément non trouvé.",
		fmt.Sprintf("%s '%s' is absent or not owned by the caller", resource, identifier),
		nil,
	)
}

func NewUnauthorized(details string, err error) *AppError {
	return New(ErrUnauthorized, "Identifiants invalides.", details, err)
}

func NewInternal(details string, err error) *AppError {
	return New(ErrInternal, "Une erreur interne s'est produite.", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON renders the {success, message, errors?} envelope every mutation
// endpoint answers with.
func (e *AppError) ToJSON() gin.H {
	out := gin.H{
		"success": false,
		"message": e.Message,
	}
	if len(e.Fields) > 0 {
		out["errors"] = e.Fields
	}
	return out
}
