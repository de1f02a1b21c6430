package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	db *DB
}

// Create valida la FK del proveedor, asigna ID y completa SupplierName.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkSupplier(product.SupplierID); err != nil {
		return err
	}
	r.db.nextProduct++
	product.ID = r.db.nextProduct
	stored := *product
	stored.SupplierName = nil
	if product.SupplierID != nil {
		sid := *product.SupplierID
		stored.SupplierID = &sid
	}
	r.db.products[product.ID] = stored
	product.SupplierName = r.db.withSupplierName(stored).SupplierName
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	return r.db.withSupplierName(p), nil
}

// GetForUpdate en memoria el bloqueo lo da TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// List productos por ID ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.filter(ctx, func(entity.Product) bool { return true }, func(a, b *entity.Product) bool {
		return a.ID < b.ID
	})
}

// ListBelowQuantity productos con quantity < threshold por quantity ascendente (desempate por ID).
func (r *ProductRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.filter(ctx, func(p entity.Product) bool { return p.Quantity < threshold }, func(a, b *entity.Product) bool {
		if a.Quantity != b.Quantity {
			return a.Quantity < b.Quantity
		}
		return a.ID < b.ID
	})
}

// errQuantityOutOfRange equivale al 22003 de PostgreSQL sobre la columna INTEGER.
var errQuantityOutOfRange = domain.NewValidationError("quantity", fmt.Sprintf("would exceed the maximum of %d", entity.MaxQuantity))

// AdjustQuantity suma delta si el resultado queda >= 0. (nil, nil) si no existe o no alcanza.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id int64, delta int) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.products[id]
	if !ok || p.Quantity+delta < 0 {
		return nil, nil
	}
	if p.Quantity > entity.MaxQuantity-delta {
		return nil, errQuantityOutOfRange
	}
	p.Quantity += delta
	r.db.products[id] = p
	return r.db.withSupplierName(p), nil
}

// Update aplica el patch campo por campo (COALESCE).
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	if err := r.checkSupplier(patch.SupplierID); err != nil {
		return nil, err
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SupplierID != nil {
		sid := *patch.SupplierID
		p.SupplierID = &sid
	}
	r.db.products[id] = p
	return r.db.withSupplierName(p), nil
}

// Delete elimina y devuelve el estado previo.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	delete(r.db.products, id)
	return r.db.withSupplierName(p), nil
}

// checkSupplier FK products.supplier_id → suppliers.id. Llamar con db.mu tomado.
func (r *ProductRepo) checkSupplier(supplierID *int64) error {
	if supplierID == nil {
		return nil
	}
	if _, ok := r.db.suppliers[*supplierID]; !ok {
		return &domain.ReferenceError{SupplierID: *supplierID}
	}
	return nil
}

func (r *ProductRepo) filter(
	ctx context.Context,
	keep func(entity.Product) bool,
	less func(a, b *entity.Product) bool,
) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]*entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		if keep(p) {
			list = append(list, r.db.withSupplierName(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return less(list[i], list[j]) })
	return list, nil
}
