package recording

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEntry      = errors.New("invalid entry")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating entry id")
)

// EntryError é um erro com contexto adicional para registros
type EntryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo do formulário (quando aplicável)
	Details string
}

func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func NewEntryError(err error, code string, details string) *EntryError {
	return &EntryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewFieldError(err error, code string, field string, details string) *EntryError {
	return &EntryError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
