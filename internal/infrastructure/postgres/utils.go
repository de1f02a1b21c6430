package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-cli/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeOutOfRange          = "22003"
)

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation
}

// isOutOfRange verifica si un valor excede el rango de su columna (22003), p. ej. quantity > int4.
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeOutOfRange
}

// classify traduce errores del driver a la taxonomía de dominio:
// valor fuera de rango → ValidationError; deadline → ErrTimeout;
// cualquier otro fallo de infraestructura → ErrConnectivity.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isOutOfRange(err) {
		return domain.NewValidationError("", op+": value out of range")
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %s", domain.ErrTimeout, op)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrConnectivity, op, err)
}
