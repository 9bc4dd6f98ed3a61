package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
)

// ValidationError entrada rechazada antes de tocar el almacén.
// Siempre corregible por el caller; Reason explica el motivo concreto.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError construye un error de validación con el motivo dado.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// PersistenceError fallo a nivel de almacén: cero filas afectadas o
// clave generada ausente. No reintentable desde este núcleo.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return "persistencia: " + e.Op
	}
	return fmt.Sprintf("persistencia: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ConstraintError violación de restricción de integridad (clave foránea o
// unicidad). Se reporta aparte de PersistenceError para que el caller pueda
// mostrar "aún referenciado" en lugar de un error genérico.
type ConstraintError struct {
	Op   string
	Code string // SQLSTATE (23503 = foreign_key_violation, 23505 = unique_violation)
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("restricción violada (%s): %s: %v", e.Code, e.Op, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// TransactionError fallo dentro de la fase atómica de escritura de un
// pedido. Implica siempre rollback: el caller nunca observa estado parcial.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transacción de pedido fallida: %v", e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
