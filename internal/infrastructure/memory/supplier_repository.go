package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	db *DB
}

// Create asigna el siguiente ID y guarda una copia.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextSupplier++
	supplier.ID = r.db.nextSupplier
	r.db.suppliers[supplier.ID] = *supplier
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// List proveedores por ID ascendente.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]*entity.Supplier, 0, len(r.db.suppliers))
	for _, s := range r.db.suppliers {
		s := s
		list = append(list, &s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
