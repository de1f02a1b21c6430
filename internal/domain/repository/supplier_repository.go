package repository

import (
	"context"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para Supplier. No hay update ni delete.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
