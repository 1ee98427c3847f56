package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationError agrupa los mensajes de validación por campo.
// Se comporta como ErrInvalidInput ante errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError construye el error a partir del mapa campo → mensajes.
func NewValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add agrega un mensaje al campo indicado.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty indica si no hay ningún mensaje registrado.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return ErrInvalidInput.Error() + ": " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
