package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxQuantity tope de stock: la columna quantity es INTEGER (int4).
const MaxQuantity = math.MaxInt32

// Product representa un producto del inventario con su stock actual.
// SupplierName viene del LEFT JOIN con suppliers; es nil si no hay proveedor resoluble.
type Product struct {
	ID           int64
	Name         string
	Category     string
	Price        decimal.Decimal
	Quantity     int
	SupplierID   *int64
	SupplierName *string
}

// ProductPatch actualización parcial: un campo nil conserva el valor almacenado.
type ProductPatch struct {
	Price      *decimal.Decimal
	Category   *string
	SupplierID *int64
}

// IsEmpty indica si el patch no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Price == nil && p.Category == nil && p.SupplierID == nil
}
