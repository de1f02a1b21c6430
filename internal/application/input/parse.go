// Package input convierte texto libre (prompts del TUI, flags del CLI) en valores tipados.
// Es la única frontera de parseo: todo fallo es un *domain.ValidationError.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// DefaultThreshold umbral de stock bajo cuando el usuario no indica otro.
const DefaultThreshold = 5

// RequiredText recorta espacios y exige texto no vacío.
func RequiredText(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", domain.NewValidationError(field, "is required")
	}
	return s, nil
}

// OptionalText devuelve nil si raw está en blanco.
func OptionalText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// Price parsea un precio decimal no negativo.
func Price(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, domain.NewValidationError(field, "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError(field, "must not be negative")
	}
	return d, nil
}

// OptionalPrice como Price, pero el blanco significa "sin cambio" (nil).
func OptionalPrice(field, raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := Price(field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Quantity entero >= 0; blanco → def.
func Quantity(field, raw string, def int) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	n, err := wholeNumber(field, s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, domain.NewValidationError(field, "must not be negative")
	}
	return n, nil
}

// Amount entero estrictamente positivo (reposición y venta).
func Amount(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewValidationError(field, "is required")
	}
	n, err := wholeNumber(field, s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive number")
	}
	return n, nil
}

// wholeNumber entero acotado a entity.MaxQuantity, el rango de la columna quantity.
func wholeNumber(field, s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, domain.NewValidationError(field, "must be a whole number")
		}
		n = math.MaxInt64
		if strings.HasPrefix(s, "-") {
			n = math.MinInt64
		}
	}
	if n < -entity.MaxQuantity {
		n = -entity.MaxQuantity
	}
	if n > entity.MaxQuantity {
		return 0, domain.NewValidationError(field, fmt.Sprintf("must be at most %d", entity.MaxQuantity))
	}
	return int(n), nil
}

// ID identificador numérico > 0.
func ID(field, raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewValidationError(field, "is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive id")
	}
	return id, nil
}

// OptionalID blanco → nil.
func OptionalID(field, raw string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Threshold umbral de stock bajo; blanco → DefaultThreshold.
func Threshold(raw string) (int, error) {
	return Quantity("threshold", raw, DefaultThreshold)
}
