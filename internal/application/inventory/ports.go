package inventory

import (
	"context"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio
// de productos atado a esa tx. Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// Store es la interfaz de inventario que consumen el TUI y el CLI.
// Cada operación es una llamada request/response que puede fallar con los errores de domain.
type Store interface {
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	ListLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
	CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	Restock(ctx context.Context, productID int64, amount int) (*dto.ProductResponse, error)
	RecordSale(ctx context.Context, productID int64, amount int) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID int64) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, productID int64) (*dto.ProductResponse, error)
	GetSupplier(ctx context.Context, supplierID int64) (*dto.SupplierResponse, error)
}
