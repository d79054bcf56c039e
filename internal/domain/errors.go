package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrReferenced: el registro sigue referenciado por otro (violación de FK).
	ErrReferenced = errors.New("el registro está referenciado por otros registros")
)

// ValidationError indica un campo requerido ausente o inválido.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s es requerido", e.Field)
}

// Is permite errors.Is(err, ErrInvalidInput) sobre errores de validación.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Required construye el error de campo requerido.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// Invalid construye un error de validación con mensaje propio.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation extrae el ValidationError de la cadena de errores.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
