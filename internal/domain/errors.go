package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los tipos concretos de abajo
// satisfacen errors.Is contra el sentinel de su categoría.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("record not found")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrConnectivity         = errors.New("store unavailable")
	ErrTimeout              = errors.New("store did not answer in time")
)

// ValidationError argumento del llamador que no cumple una precondición.
// Se detecta antes de invocar el store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError atajo usado por el parser de entrada y el validador.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError el producto o proveedor referenciado no existe al momento de la operación.
type NotFoundError struct {
	Entity string // "product" | "supplier"
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ReferenceError la escritura violaría la FK products.supplier_id → suppliers.id.
type ReferenceError struct {
	SupplierID int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("supplier %d does not exist", e.SupplierID)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrReferentialIntegrity }

// InsufficientStockError una venta pide más unidades de las registradas.
// Current lleva la cantidad vigente para mostrarla al usuario.
type InsufficientStockError struct {
	ProductID int64
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: current quantity %d, requested %d", e.Current, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }
