package repository

import (
	"context"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos que devuelven un producto retornan (nil, nil) cuando el ID no existe;
// el caso de uso decide cómo reportarlo.
type ProductRepository interface {
	// Create persiste el producto y completa ID y SupplierName.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate igual que GetByID pero bloquea la fila (SELECT FOR UPDATE). Usar dentro de TxRunner.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// ListBelowQuantity productos con quantity < threshold, por quantity ascendente.
	ListBelowQuantity(ctx context.Context, threshold int) ([]*entity.Product, error)
	// AdjustQuantity suma delta a quantity solo si el resultado queda >= 0.
	AdjustQuantity(ctx context.Context, id int64, delta int) (*entity.Product, error)
	Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	// Delete elimina y devuelve el estado previo.
	Delete(ctx context.Context, id int64) (*entity.Product, error)
}
